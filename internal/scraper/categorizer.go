package scraper

import (
	"strings"

	"github.com/b1aiirrr/KaziLink/internal/models"
)

// Marker phrases that identify attachments and internships in Kenyan
// postings. Anything matching neither set is a regular job.
var (
	attachmentMarkers = []string{
		"industrial attachment",
		"field attachment",
		"student attachment",
		"attachment opportunity",
		"introduction letter",
		"attachment letter",
	}
	internshipMarkers = []string{
		"internship",
		"intern ",
		"graduate trainee",
		"trainee program",
		"fresh graduate",
		"recent graduate",
	}
)

// Categorize assigns a listing to exactly one category from its title and
// description. Attachment markers win over internship markers: postings
// aimed at current students often also mention graduates.
func Categorize(title, description string) models.Type {
	combined := strings.ToLower(title + " " + description + " ")
	for _, m := range attachmentMarkers {
		if strings.Contains(combined, m) {
			return models.TypeAttachment
		}
	}
	if strings.Contains(combined, "attachment") {
		return models.TypeAttachment
	}
	for _, m := range internshipMarkers {
		if strings.Contains(combined, m) {
			return models.TypeInternship
		}
	}
	return models.TypeJob
}
