package database

import (
	"fmt"

	"github.com/b1aiirrr/KaziLink/internal/models"
)

// ListingPageSize caps every listing query. The landing page shows a single
// fixed-size page; there is no pagination.
const ListingPageSize = 12

// ListingFilter is the active filter state driving one listing query.
// Search and Location are matched as case-insensitive substrings and only
// applied when non-empty.
type ListingFilter struct {
	Type     models.Type
	Search   string
	Location string
}

const opportunityColumns = `id, title, company, type, description, requirements, location,
	salary_range, application_deadline, source_url, source_platform, status,
	scraped_at, created_at, updated_at, experience_required, education_level,
	is_remote, industry`

// BuildListingQuery composes the SQL for one listing page read: exact type
// match, active rows only, optional ILIKE clauses for title and location,
// newest first, truncated to ListingPageSize.
func BuildListingQuery(f ListingFilter) (string, []interface{}) {
	query := "SELECT " + opportunityColumns + " FROM opportunities WHERE type = $1 AND status = 'active'"
	args := []interface{}{string(f.Type)}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		query += fmt.Sprintf(" AND title ILIKE $%d", len(args))
	}
	if f.Location != "" {
		args = append(args, "%"+f.Location+"%")
		query += fmt.Sprintf(" AND location ILIKE $%d", len(args))
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT %d", ListingPageSize)
	return query, args
}
