package validate

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/chordsmith/chordsmith/stats"
)

// SongMetadata is the untrusted provider record for a fetched song. The
// validator never assumes well-formedness of any field.
type SongMetadata struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Artist         string `json:"artist"`
	Album          string `json:"album,omitempty"`
	ReleaseDate    string `json:"release_date,omitempty"`
	HeaderImageURL string `json:"header_image_url,omitempty"`
	CoverArtURL    string `json:"cover_art_url,omitempty"`
	URL            string `json:"url"`
}

// CheckMetadata validates a provider metadata record with default
// parameters. Pass an empty expectedTitle to skip the title similarity
// check.
func CheckMetadata(meta SongMetadata, expectedTitle string) Result {
	return CheckMetadataWithParams(meta, expectedTitle, DefaultParams())
}

// CheckMetadataWithParams flags missing identity fields as critical,
// malformed URL fields as major, and a suspicious title mismatch as a
// non-blocking warning.
func CheckMetadataWithParams(meta SongMetadata, expectedTitle string, params Params) Result {
	r := newResult()

	if meta.ID == 0 {
		r.addError("id", "song id is missing", SeverityCritical)
	}
	if strings.TrimSpace(meta.Title) == "" {
		r.addError("title", "song title is blank", SeverityCritical)
	}
	if strings.TrimSpace(meta.Artist) == "" {
		r.addError("artist", "song artist is blank", SeverityCritical)
	}

	urlFields := []struct {
		field string
		value string
	}{
		{"url", meta.URL},
		{"header_image_url", meta.HeaderImageURL},
		{"cover_art_url", meta.CoverArtURL},
	}
	for _, f := range urlFields {
		if f.value != "" && !isHTTPURL(f.value) {
			r.addError(f.field, fmt.Sprintf("%s is not a well-formed http(s) URL", f.field), SeverityMajor)
		}
	}

	if expectedTitle != "" {
		similarity := stats.Similarity(
			strings.ToLower(strings.TrimSpace(expectedTitle)),
			strings.ToLower(strings.TrimSpace(meta.Title)),
		)
		if similarity < params.TitleSimilarityFloor {
			r.addWarning("title", fmt.Sprintf(
				"title %q differs from expected %q (similarity %.2f)",
				meta.Title, expectedTitle, similarity))
		}
	}

	return r
}

// isHTTPURL applies a strict http/https well-formedness check.
func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
