package templating

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/CTAG07/landingkit/pkg/keywords"
	"github.com/natefinch/atomic"
)

// Region names, as they appear in logs and reports.
const (
	RegionMetaKeywords    = "meta_keywords"
	RegionJSONKeywords    = "json_keywords"
	RegionFooterTrends    = "footer_trends"
	RegionTicker          = "ticker"
	RegionTickerDuplicate = "ticker_duplicate"
	RegionMomentumStats   = "momentum_stats"
	RegionCurrentDate     = "current_date"
)

// Report summarizes what a single Apply did to a document.
type Report struct {
	Keywords []string
	Updated  []string
	Skipped  []string
	Failed   []string
}

// Templater is the central controller of a templating run. It owns the
// keyword pools, the random source and the parsed markup fragments.
// A Templater is not safe for concurrent use; each run is a single pass.
type Templater struct {
	logger    *slog.Logger
	config    *TemplateConfig
	pools     keywords.Pools
	rng       *rand.Rand
	now       func() time.Time
	fragments *template.Template
}

// Option customizes a Templater.
type Option func(*Templater)

// WithRand sets the random source. Passing a seeded generator makes every
// selection reproducible.
func WithRand(r *rand.Rand) Option {
	return func(t *Templater) { t.rng = r }
}

// WithClock sets the clock used for the current date region.
func WithClock(now func() time.Time) Option {
	return func(t *Templater) { t.now = now }
}

// NewTemplater creates a Templater over pools. The pools are validated
// against the configured sample sizes so a run can never come up short.
func NewTemplater(logger *slog.Logger, config *TemplateConfig, pools keywords.Pools, opts ...Option) (*Templater, error) {
	if config == nil {
		config = DefaultConfig()
	}

	err := pools.Validate(map[keywords.Category]int{
		keywords.CategoryJobs:      max(config.JobCount, config.TickerJobCount),
		keywords.CategoryEducation: max(config.EducationCount, config.TickerEducationCount),
		keywords.CategoryMisc:      config.MiscCount,
	})
	if err != nil {
		return nil, err
	}

	t := &Templater{
		logger: logger,
		config: config,
		pools:  pools,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if err = t.parseFragments(); err != nil {
		return nil, fmt.Errorf("failed to parse fragment templates: %w", err)
	}
	return t, nil
}

// GetConfig returns a copy of the current configuration.
func (t *Templater) GetConfig() TemplateConfig {
	return *t.config
}

type regionJob struct {
	name     string
	marker   Marker
	generate func() (string, error)
}

// Apply substitutes every known region of doc and returns the new document.
// Regions with missing markers are left byte-for-byte unchanged and listed in
// the report; a failing region never stops the others.
func (t *Templater) Apply(doc string) (string, Report) {
	var report Report

	selected := t.SelectKeywords()
	joined := t.JoinKeywords(selected)
	report.Keywords = selected
	t.logger.Info("Generated new keywords", "keywords", joined)

	htmlJoined := template.HTMLEscapeString(joined)
	jsonJoined := jsonStringBody(joined)

	// The ticker is rendered once so both copies of the marquee match.
	var tickerHTML string
	var tickerErr error
	ticker := func() (string, error) {
		if tickerHTML == "" && tickerErr == nil {
			tickerHTML, tickerErr = t.RenderTicker(t.SelectTickerItems())
		}
		return tickerHTML, tickerErr
	}

	r := t.config.Regions
	jobs := []regionJob{
		{RegionMetaKeywords, r.MetaKeywords, func() (string, error) { return ", " + htmlJoined, nil }},
		{RegionJSONKeywords, r.JSONKeywords, func() (string, error) { return ", " + jsonJoined, nil }},
		{RegionFooterTrends, r.FooterTrends, func() (string, error) { return htmlJoined, nil }},
		{RegionTicker, r.Ticker, ticker},
		{RegionTickerDuplicate, r.TickerDuplicate, ticker},
		{RegionMomentumStats, r.MomentumStats, func() (string, error) { return t.RenderMomentum(t.SelectMomentumStats()) }},
		{RegionCurrentDate, r.CurrentDate, func() (string, error) { return t.now().Format(t.config.DateLayout), nil }},
	}

	for _, job := range jobs {
		if _, _, ok := regionBounds(doc, job.marker.Start, job.marker.End); !ok {
			t.logger.Warn("Region markers not found, skipping", "region", job.name, "start", job.marker.Start, "end", job.marker.End)
			report.Skipped = append(report.Skipped, job.name)
			continue
		}
		content, err := job.generate()
		if err != nil {
			t.logger.Error("Failed to generate region content", "region", job.name, "error", err)
			report.Failed = append(report.Failed, job.name)
			continue
		}
		doc, _ = SubstituteRegion(doc, job.marker.Start, job.marker.End, content)
		t.logger.Info("Updated region", "region", job.name)
		report.Updated = append(report.Updated, job.name)
	}
	return doc, report
}

// jsonStringBody encodes s as a JSON string and strips the surrounding
// quotes, for splicing into an existing string literal.
func jsonStringBody(s string) string {
	b, _ := json.Marshal(s) // strings always encode
	return string(b[1 : len(b)-1])
}

// Run reads the document at path, applies every substitution and writes the
// result back in place. The write goes through a temporary file and a rename,
// so the document is either fully replaced or left as it was.
func (t *Templater) Run(ctx context.Context, path string) (Report, error) {
	t.logger.Info("Reading document", "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read document: %w", err)
	}

	out, report := t.Apply(string(data))

	if err = ctx.Err(); err != nil {
		return report, err
	}
	if err = atomic.WriteFile(path, strings.NewReader(out)); err != nil {
		return report, fmt.Errorf("failed to write document: %w", err)
	}
	t.logger.Info("Wrote updated document", "path", path,
		"updated", len(report.Updated), "skipped", len(report.Skipped), "failed", len(report.Failed))
	return report, nil
}
