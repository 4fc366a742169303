package entity

// QuoteSource records the provenance of a quote so callers can distinguish
// live provider data from synthesized fallback data.
type QuoteSource string

const (
	// SourceLive marks a quote returned by the upstream provider.
	SourceLive QuoteSource = "live"
	// SourceSynthetic marks a quote generated locally after a provider failure.
	SourceSynthetic QuoteSource = "synthetic"
)

// QuoteRecord is a point-in-time price snapshot for a symbol. It is built
// fresh per request and never persisted or cached.
type QuoteRecord struct {
	Symbol        string      `json:"symbol"`
	Price         float64     `json:"price"`
	Open          float64     `json:"open"`
	High          float64     `json:"high"`
	Low           float64     `json:"low"`
	Volume        int64       `json:"volume"`
	Date          string      `json:"date"`
	PercentChange float64     `json:"percentChange"`
	IsDown        bool        `json:"isDown"`
	Source        QuoteSource `json:"source"`
}
