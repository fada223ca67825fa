package services

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/b1aiirrr/KaziLink/internal/database"
	"github.com/b1aiirrr/KaziLink/internal/models"
)

// section is one entry of the landing page category switcher.
type section struct {
	Type        models.Type
	Label       string
	Icon        string
	Description string
}

var sections = []section{
	{models.TypeAttachment, "Attachments", "📎", "For current students"},
	{models.TypeInternship, "Internships", "🎓", "For fresh graduates"},
	{models.TypeJob, "Jobs", "💼", "For professionals"},
}

// pluralLabels heads the results grid ("3 Internships Available").
var pluralLabels = map[models.Type]string{
	models.TypeAttachment: "Attachments",
	models.TypeInternship: "Internships",
	models.TypeJob:        "Jobs",
}

// locations offered by the landing page location filter.
var locations = []string{"Nairobi", "Mombasa", "Kisumu", "Nakuru", "Eldoret"}

// filterFromQuery builds the active filter state from request query params.
// An unknown or missing section falls back to attachment, the initial state.
func filterFromQuery(c *gin.Context) database.ListingFilter {
	active := models.TypeAttachment
	if t, err := models.ParseType(c.Query("section")); err == nil {
		active = t
	}
	return database.ListingFilter{
		Type:     active,
		Search:   c.Query("q"),
		Location: c.Query("location"),
	}
}

// homePage renders the listing page. A store failure is logged and rendered
// as the empty "no opportunities found" state; the visitor never sees a raw
// fetch error.
func (s *Service) homePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		f := filterFromQuery(c)

		opportunities, err := s.store.SearchOpportunities(c.Request.Context(), f)
		if err != nil {
			log.Printf("error loading opportunities: %v", err)
			opportunities = nil
		}

		// Signed-in state only changes the header; a missing or stale
		// session renders the public page.
		var email string
		if user, err := s.currentUser(c); err == nil {
			email = user.Email
		}

		c.HTML(http.StatusOK, "home.html", gin.H{
			"Sections":      sections,
			"Active":        f.Type,
			"ActiveLabel":   pluralLabels[f.Type],
			"Query":         f.Search,
			"Location":      f.Location,
			"Opportunities": opportunities,
			"Locations":     locations,
			"UserEmail":     email,
		})
	}
}

// listOpportunities is the JSON read interface over the same query builder.
func (s *Service) listOpportunities() gin.HandlerFunc {
	return func(c *gin.Context) {
		f := filterFromQuery(c)

		opportunities, err := s.store.SearchOpportunities(c.Request.Context(), f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, erro(err))
			return
		}

		if len(opportunities) == 0 {
			c.JSON(http.StatusOK, make([]models.Opportunity, 0))
			return
		}

		c.JSON(http.StatusOK, opportunities)
	}
}
