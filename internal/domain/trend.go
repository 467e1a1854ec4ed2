package domain

// TrendGroup is one row of the trends aggregation: events grouped by
// topic (category) and region, with count and mean sentiment over the
// current table contents.
type TrendGroup struct {
	Topic           string  `db:"topic" json:"topic"`
	RegionSlug      string  `db:"region_slug" json:"region_slug"`
	EventCount      int64   `db:"event_count" json:"event_count"`
	AvgSentiment    float64 `db:"avg_sentiment" json:"avg_sentiment"`
	SampleTitle     string  `json:"sample_title"`
	SampleSourceURL string  `json:"sample_source_url"`
}
