package services_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/b1aiirrr/KaziLink/internal/config"
	"github.com/b1aiirrr/KaziLink/internal/database"
	"github.com/b1aiirrr/KaziLink/internal/models"
	"github.com/b1aiirrr/KaziLink/internal/services"
)

// fakeStore is an in-memory Store applying the same filter semantics as the
// SQL listing query: exact type, active only, case-insensitive substring
// match on title and location, newest first, truncated to the page size.
type fakeStore struct {
	opportunities []models.Opportunity
	users         map[string]models.User
	searchErr     error
	insertErr     error
	filters       []database.ListingFilter
	clock         time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: make(map[string]models.User),
		clock: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStore) add(o models.Opportunity) {
	f.clock = f.clock.Add(time.Minute)
	o.CreatedAt = f.clock
	f.opportunities = append(f.opportunities, o)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (f *fakeStore) SearchOpportunities(_ context.Context, filter database.ListingFilter) ([]models.Opportunity, error) {
	f.filters = append(f.filters, filter)
	if f.searchErr != nil {
		return nil, f.searchErr
	}

	var matched []models.Opportunity
	for _, o := range f.opportunities {
		if o.Type != filter.Type || o.Status != models.StatusActive {
			continue
		}
		if filter.Search != "" && !containsFold(o.Title, filter.Search) {
			continue
		}
		if filter.Location != "" && !containsFold(o.Location, filter.Location) {
			continue
		}
		matched = append(matched, o)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if len(matched) > database.ListingPageSize {
		matched = matched[:database.ListingPageSize]
	}
	return matched, nil
}

func (f *fakeStore) InsertOpportunities(_ context.Context, opportunities []models.Opportunity) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, o := range opportunities {
		f.add(o)
	}
	return nil
}

func (f *fakeStore) RegisterUser(_ context.Context, user models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	user.ID = uint64(len(f.users) + 1)
	f.users[user.Email] = user
	return nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return models.User{}, errors.New("no rows in result set")
	}
	return user, nil
}

func (f *fakeStore) ExistsEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func newTestRouter(store services.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Port:          "8080",
		JWTSecret:     "test-secret",
		TemplatesGlob: "../../web/templates/*.html",
		StaticDir:     "../../web/static",
	}
	return services.New(store, cfg).Router()
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func doForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}
