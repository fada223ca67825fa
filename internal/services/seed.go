package services

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/b1aiirrr/KaziLink/internal/models"
)

const (
	testUserEmail    = "test@kazilink.com"
	testUserPassword = "password123"
)

// seedOpportunities returns the fixed sample records inserted by /api/seed.
func seedOpportunities() []models.Opportunity {
	return []models.Opportunity{
		{
			Title:          "Junior Software Engineer",
			Company:        "Tech Solutions Ltd",
			Location:       "Nairobi",
			Type:           models.TypeJob,
			Description:    "We are looking for a junior developer with React and Node.js skills.",
			SourceURL:      "https://example.com/job1",
			SourcePlatform: "Internal",
			Status:         models.StatusActive,
		},
		{
			Title:          "Marketing Intern",
			Company:        "Growth Agency",
			Location:       "Remote",
			Type:           models.TypeInternship,
			Description:    "Join our marketing team and learn SEO, content marketing, and social media strategies.",
			SourceURL:      "https://example.com/intern1",
			SourcePlatform: "Internal",
			Status:         models.StatusActive,
		},
		{
			Title:          "IT Attachment",
			Company:        "Government Ministry",
			Location:       "Mombasa",
			Type:           models.TypeAttachment,
			Description:    "attachment opportunity for 3rd year students. Must have a letter from the university.",
			SourceURL:      "https://example.com/attach1",
			SourcePlatform: "Internal",
			Status:         models.StatusActive,
		},
		{
			Title:          "Data Analyst",
			Company:        "FinTech Corp",
			Location:       "Nairobi",
			Type:           models.TypeJob,
			Description:    "Analyze financial data and generate reports. SQL and Python required.",
			SourceURL:      "https://example.com/job2",
			SourcePlatform: "Internal",
			Status:         models.StatusActive,
		},
		{
			Title:          "Graphic Design Intern",
			Company:        "Creative Studio",
			Location:       "Kisumu",
			Type:           models.TypeInternship,
			Description:    "Create visuals for social media and marketing campaigns. Photoshop and Illustrator skills.",
			SourceURL:      "https://example.com/intern2",
			SourcePlatform: "Internal",
			Status:         models.StatusActive,
		},
	}
}

type seedCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// seedResponse separates the primary outcome (the insert) from the advisory
// one (test account provisioning): a provisioning failure surfaces only as
// Warning, never as an HTTP error.
type seedResponse struct {
	Message  string          `json:"message"`
	TestUser seedCredentials `json:"testUser"`
	Warning  string          `json:"warning,omitempty"`
}

// seed is the development-only route that populates the store with sample
// records and a confirmed test account. Not idempotent: every call inserts
// the same five records again.
func (s *Service) seed() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.store.InsertOpportunities(c.Request.Context(), seedOpportunities()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Insert Error: " + err.Error()})
			return
		}

		resp := seedResponse{
			Message: "Seeded successfully",
			TestUser: seedCredentials{
				Email:    testUserEmail,
				Password: testUserPassword,
			},
		}

		user, err := newUser(testUserEmail, testUserPassword, true)
		if err == nil {
			err = s.store.RegisterUser(c.Request.Context(), user)
		}
		if err != nil {
			log.Printf("user creation error (might already exist): %v", err)
			resp.Warning = "test user not created: " + err.Error()
		}

		c.JSON(http.StatusOK, resp)
	}
}
