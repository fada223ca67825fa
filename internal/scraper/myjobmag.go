package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MyJobMagFetcher scrapes MyJobMag's Kenya listing pages.
type MyJobMagFetcher struct {
	BaseURL string
	client  *http.Client
}

func NewMyJobMagFetcher() *MyJobMagFetcher {
	return &MyJobMagFetcher{
		BaseURL: "https://www.myjobmag.com",
		client:  newHTTPClient(),
	}
}

func (f *MyJobMagFetcher) Name() string { return "myjobmag" }

func (f *MyJobMagFetcher) Fetch(ctx context.Context, page int) ([]RawListing, error) {
	url := f.BaseURL + "/jobs-by-country/kenya"
	if page > 1 {
		url = fmt.Sprintf("%s/page-%d", url, page)
	}

	resp, err := get(ctx, f.client, url)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("myjobmag returned %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var listings []RawListing
	doc.Find("li.job-list-li, ul.job-list li, article").Each(func(_ int, card *goquery.Selection) {
		link := card.Find(`a[href*="/job/"]`).First()
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

		listings = append(listings, RawListing{
			Title:          title,
			Company:        textOr(card.Find(".job-comp-name, .company").First(), "Unknown Company"),
			Location:       textOr(card.Find(".job-location, .location").First(), "Kenya"),
			Description:    textOr(card.Find(".job-desc, .description").First(), title),
			SourceURL:      href,
			SourcePlatform: f.Name(),
		})
	})

	return listings, nil
}
