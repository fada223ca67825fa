package scraper

import (
	"context"
	"log"

	"github.com/b1aiirrr/KaziLink/internal/models"
)

// Inserter is the slice of the store the worker needs: dedup insert only.
type Inserter interface {
	InsertOpportunityIfNew(ctx context.Context, o models.Opportunity) (bool, error)
}

// Worker runs one full ingestion cycle: fetch every source, categorize each
// listing, and insert the ones not seen before (dedup by source_url).
type Worker struct {
	store    Inserter
	fetchers []Fetcher
}

func NewWorker(store Inserter, fetchers ...Fetcher) *Worker {
	return &Worker{store: store, fetchers: fetchers}
}

// Run executes one ingestion cycle. A failing source is logged and skipped;
// the remaining sources still run.
func (w *Worker) Run(ctx context.Context) {
	var totalInserted, totalDuplicate int

	for _, f := range w.fetchers {
		inserted, dupes, err := w.ingestSource(ctx, f)
		if err != nil {
			log.Printf("[worker] %s failed: %v — continuing", f.Name(), err)
			continue
		}
		totalInserted += inserted
		totalDuplicate += dupes
	}

	log.Printf("[worker] Ingestion cycle done — inserted=%d duplicates=%d", totalInserted, totalDuplicate)
}

func (w *Worker) ingestSource(ctx context.Context, f Fetcher) (inserted, dupes int, err error) {
	log.Printf("[worker] Scraping %s", f.Name())

	for page := 1; page <= maxPages; page++ {
		listings, err := f.Fetch(ctx, page)
		if err != nil {
			return inserted, dupes, err
		}
		if len(listings) == 0 {
			break
		}

		for _, raw := range listings {
			if raw.SourceURL == "" {
				continue
			}

			ok, err := w.store.InsertOpportunityIfNew(ctx, w.toOpportunity(raw))
			if err != nil {
				log.Printf("[worker] insert error for %q: %v", raw.Title, err)
				continue
			}
			if ok {
				inserted++
			} else {
				dupes++
			}
		}
	}

	return inserted, dupes, nil
}

func (w *Worker) toOpportunity(raw RawListing) models.Opportunity {
	return models.Opportunity{
		Title:          raw.Title,
		Company:        raw.Company,
		Type:           Categorize(raw.Title, raw.Description),
		Description:    raw.Description,
		Location:       raw.Location,
		SourceURL:      raw.SourceURL,
		SourcePlatform: raw.SourcePlatform,
		Status:         models.StatusActive,
		IsRemote:       isRemote(raw.Location),
	}
}

func isRemote(location string) bool {
	return location == "Remote" || location == "remote"
}
