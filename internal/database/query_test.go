package database

import (
	"strings"
	"testing"

	"github.com/b1aiirrr/KaziLink/internal/models"
)

func TestBuildListingQuery_TypeOnly(t *testing.T) {
	query, args := BuildListingQuery(ListingFilter{Type: models.TypeAttachment})

	if len(args) != 1 {
		t.Fatalf("expected 1 arg, got %d: %v", len(args), args)
	}
	if args[0] != "attachment" {
		t.Errorf("first arg = %v, want \"attachment\"", args[0])
	}
	if strings.Contains(query, "ILIKE") {
		t.Errorf("query without search/location should have no ILIKE clause: %s", query)
	}
	if !strings.Contains(query, "status = 'active'") {
		t.Errorf("query must always restrict to active rows: %s", query)
	}
	if !strings.Contains(query, "ORDER BY created_at DESC") {
		t.Errorf("query must order newest first: %s", query)
	}
	if !strings.Contains(query, "LIMIT 12") {
		t.Errorf("query must truncate to the listing page size: %s", query)
	}
}

func TestBuildListingQuery_SearchClause(t *testing.T) {
	query, args := BuildListingQuery(ListingFilter{Type: models.TypeJob, Search: "engineer"})

	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d: %v", len(args), args)
	}
	if args[1] != "%engineer%" {
		t.Errorf("search arg = %v, want %%engineer%%", args[1])
	}
	if !strings.Contains(query, "title ILIKE $2") {
		t.Errorf("search clause missing or misnumbered: %s", query)
	}
	if strings.Contains(query, "location ILIKE") {
		t.Errorf("location clause should be absent when location is empty: %s", query)
	}
}

func TestBuildListingQuery_LocationClause(t *testing.T) {
	query, args := BuildListingQuery(ListingFilter{Type: models.TypeJob, Location: "Nairobi"})

	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d: %v", len(args), args)
	}
	if args[1] != "%Nairobi%" {
		t.Errorf("location arg = %v, want %%Nairobi%%", args[1])
	}
	if !strings.Contains(query, "location ILIKE $2") {
		t.Errorf("location clause missing or misnumbered: %s", query)
	}
}

func TestBuildListingQuery_BothClauses(t *testing.T) {
	query, args := BuildListingQuery(ListingFilter{
		Type:     models.TypeInternship,
		Search:   "marketing",
		Location: "Remote",
	})

	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d: %v", len(args), args)
	}
	if !strings.Contains(query, "title ILIKE $2") || !strings.Contains(query, "location ILIKE $3") {
		t.Errorf("expected both ILIKE clauses with sequential placeholders: %s", query)
	}
}
