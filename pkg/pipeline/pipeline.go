// Package pipeline runs one fetch, map and write pass over the dealer API.
package pipeline

import (
	"context"
	"fmt"
	"net/http"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/cheesesashimi/mazdadealers/pkg/config"
	"github.com/cheesesashimi/mazdadealers/pkg/dealer"
	"github.com/cheesesashimi/mazdadealers/pkg/flatfile"
	"github.com/cheesesashimi/mazdadealers/pkg/logger"
	"github.com/cheesesashimi/mazdadealers/pkg/utils"
)

// Summary describes a completed run.
type Summary struct {
	Path       string
	Fetched    int
	Written    int
	Skipped    int
	Duplicates int
}

// Run fetches the dealer listing described by cfg and writes it to
// cfg.OutputPath. Fetch and parse failures return before the output file is
// touched.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger) (Summary, error) {
	summary := Summary{Path: cfg.OutputPath}

	if host, err := utils.URLToHostname(cfg.DealersURL); err == nil {
		log = log.With(logger.Fields{"source": host})
	}

	fetcher := dealer.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.UserAgent)

	body, err := fetcher.Fetch(ctx, cfg.DealersURL)
	if err != nil {
		return summary, err
	}

	raws, err := dealer.Parse(body)
	if err != nil {
		return summary, err
	}

	summary.Fetched = len(raws)

	opts := dealer.MapOptions{Workers: cfg.MapWorkers}
	if cfg.StripMarkup {
		opts.Filter = utils.StripMarkup
	}

	results := dealer.MapAll(raws, opts)

	for _, r := range results {
		if r.Err != nil {
			summary.Skipped++
			log.Warn("Skipped a dealer due to error", logger.Fields{
				"index": r.Index,
				"error": r.Err.Error(),
			})
		}
	}

	records := dealer.Records(results)
	summary.Written = len(records)
	summary.Duplicates = countDuplicates(records, log)

	if err := flatfile.WriteFile(cfg.OutputPath, records); err != nil {
		return summary, err
	}

	log.Info(fmt.Sprintf("Mazda dealer data written to %s", cfg.OutputPath), logger.Fields{
		"fetched": summary.Fetched,
		"written": summary.Written,
		"skipped": summary.Skipped,
	})

	return summary, nil
}

// countDuplicates warns about records sharing an external reference. They
// are still written.
func countDuplicates(records []dealer.Record, log *logger.Logger) int {
	seen := sets.NewString()
	duplicates := 0

	for _, r := range records {
		if r.ExternalReferences == "" {
			continue
		}

		if seen.Has(r.ExternalReferences) {
			duplicates++
			log.Warn("Duplicate dealer reference", logger.Fields{
				"id":   r.ExternalReferences,
				"name": r.Name,
			})
			continue
		}

		seen.Insert(r.ExternalReferences)
	}

	return duplicates
}
