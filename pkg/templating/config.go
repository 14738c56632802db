package templating

// Marker is the start/end pair that brackets a region.
type Marker struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// RegionMarkers holds the marker pair for every region the Templater knows.
type RegionMarkers struct {
	MetaKeywords    Marker `json:"meta_keywords" yaml:"meta_keywords"`
	JSONKeywords    Marker `json:"json_keywords" yaml:"json_keywords"`
	FooterTrends    Marker `json:"footer_trends" yaml:"footer_trends"`
	Ticker          Marker `json:"ticker" yaml:"ticker"`
	TickerDuplicate Marker `json:"ticker_duplicate" yaml:"ticker_duplicate"`
	MomentumStats   Marker `json:"momentum_stats" yaml:"momentum_stats"`
	CurrentDate     Marker `json:"current_date" yaml:"current_date"`
}

// TemplateConfig holds all configuration options for the Templater.
type TemplateConfig struct {
	// JobCount, EducationCount and MiscCount are the per-pool sample sizes
	// for the keyword regions.
	JobCount       int `json:"job_count" yaml:"job_count"`
	EducationCount int `json:"education_count" yaml:"education_count"`
	MiscCount      int `json:"misc_count" yaml:"misc_count"`

	// TickerJobCount and TickerEducationCount are the sample sizes for the
	// ticker, drawn independently of the keyword selection.
	TickerJobCount       int `json:"ticker_job_count" yaml:"ticker_job_count"`
	TickerEducationCount int `json:"ticker_education_count" yaml:"ticker_education_count"`

	// KeywordSeparator joins selected keywords in text regions.
	KeywordSeparator string `json:"keyword_separator" yaml:"keyword_separator"`

	// Trend, seeker and hiring ranges are half-open: [Min, Max).
	TrendMin      int `json:"trend_min" yaml:"trend_min"`
	TrendMax      int `json:"trend_max" yaml:"trend_max"`
	SeekersMin    int `json:"seekers_min" yaml:"seekers_min"`
	SeekersMax    int `json:"seekers_max" yaml:"seekers_max"`
	HiringDaysMin int `json:"hiring_days_min" yaml:"hiring_days_min"`
	HiringDaysMax int `json:"hiring_days_max" yaml:"hiring_days_max"`

	// FragmentIndent is written after each newline between markup fragments.
	FragmentIndent string `json:"fragment_indent" yaml:"fragment_indent"`

	// DateLayout is a Go time layout for the current date region.
	DateLayout string `json:"date_layout" yaml:"date_layout"`

	// Momentum tables. One entry of each is picked per run.
	SentimentLabels []string `json:"sentiment_labels" yaml:"sentiment_labels"`
	RemoteLabels    []string `json:"remote_labels" yaml:"remote_labels"`
	PremiumLabels   []string `json:"premium_labels" yaml:"premium_labels"`

	Regions RegionMarkers `json:"regions" yaml:"regions"`
}

func commentMarker(name string) Marker {
	return Marker{
		Start: "<!-- " + name + "_START -->",
		End:   "<!-- " + name + "_END -->",
	}
}

// DefaultConfig returns a TemplateConfig with the stock sample sizes, ranges
// and HTML comment markers.
func DefaultConfig() *TemplateConfig {
	return &TemplateConfig{
		JobCount:             4,
		EducationCount:       3,
		MiscCount:            1,
		TickerJobCount:       4,
		TickerEducationCount: 3,
		KeywordSeparator:     ", ",
		TrendMin:             8,
		TrendMax:             35,
		SeekersMin:           1500,
		SeekersMax:           3000,
		HiringDaysMin:        14,
		HiringDaysMax:        22,
		FragmentIndent:       "            ",
		DateLayout:           "January 2, 2006",
		SentimentLabels:      []string{"Bullish", "Strong", "Heating Up", "Optimistic"},
		RemoteLabels:         []string{"Expanding", "Competitive", "Stable", "Growing"},
		PremiumLabels:        []string{"+18%", "+22%", "+27%", "+31%"},
		Regions: RegionMarkers{
			MetaKeywords:    commentMarker("DYNAMIC_KEYWORDS"),
			JSONKeywords:    commentMarker("DYNAMIC_JSON_KEYWORDS"),
			FooterTrends:    commentMarker("TRENDING_TERMS"),
			Ticker:          commentMarker("TICKER_ITEMS"),
			TickerDuplicate: commentMarker("TICKER_ITEMS_DUPLICATE"),
			MomentumStats:   commentMarker("MOMENTUM_STATS"),
			CurrentDate:     commentMarker("CURRENT_DATE"),
		},
	}
}
