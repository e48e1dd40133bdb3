package collect

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yeqiyushi-eng/censys-openclaw/internal/api"
	"github.com/yeqiyushi-eng/censys-openclaw/internal/logger"
)

// Searcher is the slice of the API client the collector needs.
type Searcher interface {
	Search(ctx context.Context, query string, perPage int, cursor string, fields []string) (*api.SearchResult, error)
}

// Options configure one collection run.
type Options struct {
	Query    string
	Titles   []string
	PerPage  int
	MaxPages int // 0 = no limit
	Interval time.Duration
	OutDir   string
}

// Counters summarize a run.
type Counters struct {
	Pages int
	Hosts int
	Rows  int
}

// Result is a finished run: counters plus the two output paths.
type Result struct {
	Counters
	JSONLPath string
	CSVPath   string
}

// Collector drives the fetch -> raw sink -> flatten pipeline. One page
// at a time, synchronously: a record is never flattened before its raw
// line is on disk.
type Collector struct {
	client Searcher
	opts   Options
	log    *logrus.Logger

	// OnPage, when set, is called after each page has been stored.
	OnPage func(c Counters)
}

func New(client Searcher, opts Options) *Collector {
	return &Collector{
		client: client,
		opts:   opts,
		log:    logger.GetLogger(),
	}
}

// Run executes one collection pass. The run date is fixed up front so
// both output files share it even when the run crosses midnight.
func (c *Collector) Run(ctx context.Context) (*Result, error) {
	date := DateJST(time.Now())
	jsonlPath, csvPath := OutputPaths(c.opts.OutDir, date)

	if err := os.MkdirAll(c.opts.OutDir, 0755); err != nil {
		return nil, err
	}

	raw, err := NewRawSink(jsonlPath)
	if err != nil {
		return nil, err
	}
	csvSink, err := NewCSVSink(csvPath)
	if err != nil {
		raw.Close()
		return nil, err
	}

	res := &Result{JSONLPath: jsonlPath, CSVPath: csvPath}
	runErr := c.fetchAll(ctx, raw, csvSink, &res.Counters)

	if err := raw.Close(); err != nil {
		csvSink.Close()
		return nil, err
	}
	if err := csvSink.Close(); err != nil {
		return nil, err
	}
	if runErr != nil {
		return nil, runErr
	}
	return res, nil
}

func (c *Collector) fetchAll(ctx context.Context, raw *RawSink, csvSink *CSVSink, counters *Counters) error {
	// rate.Every(0) is an infinite limit, so a zero interval never waits.
	limiter := rate.NewLimiter(rate.Every(c.opts.Interval), 1)
	cursor := ""

	for {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		page, err := c.client.Search(ctx, c.opts.Query, c.opts.PerPage, cursor, api.DefaultFields)
		if err != nil {
			// A failure on the first page produced nothing and fails the
			// run; after that, keep what we have.
			if counters.Pages > 0 {
				c.log.Warnf("stopped after %d pages: %v", counters.Pages, err)
				return nil
			}
			return err
		}

		if len(page.Hits) == 0 {
			return nil
		}

		counters.Pages++
		counters.Hosts += len(page.Hits)

		for _, hit := range page.Hits {
			if err := raw.WriteRecord(hit); err != nil {
				return err
			}

			var host api.Host
			if err := json.Unmarshal(hit, &host); err != nil {
				// The raw line is already written; only the CSV loses
				// this record.
				c.log.Warnf("skipping undecodable host record: %v", err)
				continue
			}

			rows := BuildRows(&host, c.opts.Titles)
			if err := csvSink.WriteRows(rows); err != nil {
				return err
			}
			counters.Rows += len(rows)
		}

		if c.OnPage != nil {
			c.OnPage(*counters)
		}

		if c.opts.MaxPages > 0 && counters.Pages >= c.opts.MaxPages {
			return nil
		}

		cursor = page.Links.Next
		if cursor == "" {
			return nil
		}
	}
}
