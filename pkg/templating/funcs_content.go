package templating

import (
	"strconv"
	"strings"

	"github.com/CTAG07/landingkit/pkg/keywords"
)

// CategoryLive tags ticker items that carry live market metrics rather than
// pool keywords.
const CategoryLive = "live"

// TickerItem is one entry of the scrolling market ticker.
type TickerItem struct {
	Text     string
	Trend    int // percent; 0 means the item has no trend badge
	Category string
}

// MomentumStats is the three-row market momentum block.
type MomentumStats struct {
	Sentiment string
	Remote    string
	Premium   string
}

// MomentumRow is a single label/value row of MomentumStats.
type MomentumRow struct {
	Label string
	Value string
}

// Rows returns the stats in display order.
func (m MomentumStats) Rows() []MomentumRow {
	return []MomentumRow{
		{Label: "Market Sentiment", Value: m.Sentiment},
		{Label: "Remote Market", Value: m.Remote},
		{Label: "Skill Premium", Value: m.Premium},
	}
}

// SelectKeywords samples the job, education and misc pools without
// replacement and returns the picks in that order.
func (t *Templater) SelectKeywords() []string {
	jobs := Sample(t.pools.Jobs, t.config.JobCount, t.rng)
	edu := Sample(t.pools.Education, t.config.EducationCount, t.rng)
	misc := Sample(t.pools.Misc, t.config.MiscCount, t.rng)

	out := make([]string, 0, len(jobs)+len(edu)+len(misc))
	out = append(out, jobs...)
	out = append(out, edu...)
	return append(out, misc...)
}

// JoinKeywords joins a keyword selection with the configured separator.
func (t *Templater) JoinKeywords(selected []string) string {
	return strings.Join(selected, t.config.KeywordSeparator)
}

// SelectTickerItems draws a fresh job and education sample, independent of
// SelectKeywords, and appends the two live metrics. Job items carry a trend
// percentage.
func (t *Templater) SelectTickerItems() []TickerItem {
	jobs := Sample(t.pools.Jobs, t.config.TickerJobCount, t.rng)
	edu := Sample(t.pools.Education, t.config.TickerEducationCount, t.rng)

	items := make([]TickerItem, 0, len(jobs)+len(edu)+2)
	for _, job := range jobs {
		items = append(items, TickerItem{
			Text:     job,
			Trend:    randomInt(t.rng, t.config.TrendMin, t.config.TrendMax),
			Category: string(keywords.CategoryJobs),
		})
	}
	for _, e := range edu {
		items = append(items, TickerItem{Text: e, Category: string(keywords.CategoryEducation)})
	}

	seekers := randomInt(t.rng, t.config.SeekersMin, t.config.SeekersMax)
	days := randomInt(t.rng, t.config.HiringDaysMin, t.config.HiringDaysMax)
	items = append(items,
		TickerItem{Text: strconv.Itoa(seekers) + " active seekers this week", Category: CategoryLive},
		TickerItem{Text: "Avg. hiring cycle: " + strconv.Itoa(days) + " days", Category: CategoryLive},
	)
	return items
}

// SelectMomentumStats picks one entry from each momentum table.
func (t *Templater) SelectMomentumStats() MomentumStats {
	return MomentumStats{
		Sentiment: randomChoice(t.config.SentimentLabels, t.rng),
		Remote:    randomChoice(t.config.RemoteLabels, t.rng),
		Premium:   randomChoice(t.config.PremiumLabels, t.rng),
	}
}
