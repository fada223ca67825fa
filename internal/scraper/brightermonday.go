package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BrighterMondayFetcher scrapes the BrighterMonday Kenya listing pages.
type BrighterMondayFetcher struct {
	BaseURL string
	client  *http.Client
}

func NewBrighterMondayFetcher() *BrighterMondayFetcher {
	return &BrighterMondayFetcher{
		BaseURL: "https://www.brightermonday.co.ke",
		client:  newHTTPClient(),
	}
}

func (f *BrighterMondayFetcher) Name() string { return "brightermonday" }

// Fetch parses one listing page. Cards are identified by their job-vacancy
// links; cards without a resolvable title are skipped.
func (f *BrighterMondayFetcher) Fetch(ctx context.Context, page int) ([]RawListing, error) {
	url := fmt.Sprintf("%s/jobs?page=%d", f.BaseURL, page)

	resp, err := get(ctx, f.client, url)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brightermonday returned %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var listings []RawListing
	doc.Find("article, div.search-result").Each(func(_ int, card *goquery.Selection) {
		link := card.Find(`a[href*="/job-vacancies/"]`).First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		if !strings.HasPrefix(href, "http") {
			href = f.BaseURL + href
		}

		title := text(card.Find("h2, h3").First())
		if title == "" {
			title = text(link)
		}
		if title == "" {
			return
		}

		company := textOr(card.Find(".company, .organization").First(), "Unknown Company")
		location := textOr(card.Find(".location, .region").First(), "Kenya")
		description := textOr(card.Find(".description, .snippet, .summary").First(), title)

		listings = append(listings, RawListing{
			Title:          title,
			Company:        company,
			Location:       location,
			Description:    description,
			SourceURL:      href,
			SourcePlatform: f.Name(),
		})
	})

	return listings, nil
}

func text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}

func textOr(sel *goquery.Selection, fallback string) string {
	if t := text(sel); t != "" {
		return t
	}
	return fallback
}
