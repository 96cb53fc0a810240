package validate

// Params carries the validation policy thresholds. The defaults are the
// values downstream consumers were tuned against; override them only if
// output compatibility with other sources does not matter.
type Params struct {
	TitleSimilarityFloor float64 `json:"title_similarity_floor"` // Minimum expected/actual title similarity before warning
	MinLyricsLength      int     `json:"min_lyrics_length"`      // Character floor below which lyrics are rejected
	MinSections          int     `json:"min_sections"`           // Section count below which a structure warning is raised
	MaxRetries           int     `json:"max_retries"`            // Caller retry budget for the combination policy
}

// DefaultParams returns the standard validation thresholds.
func DefaultParams() Params {
	return Params{
		TitleSimilarityFloor: 0.9,
		MinLyricsLength:      100,
		MinSections:          2,
		MaxRetries:           2,
	}
}
