package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMetadata() SongMetadata {
	return SongMetadata{
		ID:             2471,
		Title:          "Hotel California",
		Artist:         "Eagles",
		Album:          "Hotel California",
		ReleaseDate:    "1977-02-22",
		HeaderImageURL: "https://images.example.com/header.jpg",
		CoverArtURL:    "https://images.example.com/cover.jpg",
		URL:            "https://songs.example.com/hotel-california",
	}
}

func TestCheckMetadataValid(t *testing.T) {
	r := CheckMetadata(validMetadata(), "")
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
}

func TestCheckMetadataMissingIdentityFields(t *testing.T) {
	r := CheckMetadata(SongMetadata{Title: "   ", Artist: ""}, "")

	assert.False(t, r.Valid)
	assert.Equal(t, 3, r.CriticalCount())

	fields := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"id", "title", "artist"}, fields)
}

func TestCheckMetadataMixedSeverities(t *testing.T) {
	r := CheckMetadata(SongMetadata{Artist: "X", URL: "not a url"}, "")

	assert.False(t, r.Valid)
	assert.Equal(t, 2, r.CriticalCount(), "missing id and blank title")

	majors := 0
	for _, e := range r.Errors {
		if e.Severity == SeverityMajor {
			majors++
		}
	}
	assert.Equal(t, 1, majors, "malformed url")
}

func TestCheckMetadataMalformedURLs(t *testing.T) {
	meta := validMetadata()
	meta.URL = "not a url"
	meta.HeaderImageURL = "ftp://images.example.com/header.jpg"
	meta.CoverArtURL = "https://"

	r := CheckMetadata(meta, "")

	// Bad URLs are major findings and do not block validity
	assert.True(t, r.Valid)
	require.Len(t, r.Errors, 3)
	for _, e := range r.Errors {
		assert.Equal(t, SeverityMajor, e.Severity)
	}
}

func TestCheckMetadataEmptyURLFieldsSkipped(t *testing.T) {
	meta := validMetadata()
	meta.HeaderImageURL = ""
	meta.CoverArtURL = ""

	r := CheckMetadata(meta, "")
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
}

func TestCheckMetadataTitleSimilarity(t *testing.T) {
	meta := validMetadata()

	// Exact match, different case: no warning
	r := CheckMetadata(meta, "hotel california")
	assert.Empty(t, r.Warnings)

	// Near match above the floor: no warning
	r = CheckMetadata(meta, "Hotel Californio")
	assert.Empty(t, r.Warnings)

	// Containment caps similarity at 0.8, below the 0.9 floor
	meta.Title = "Hotel California (Live)"
	r = CheckMetadata(meta, "Hotel California")
	require.Len(t, r.Warnings, 1)
	assert.Equal(t, "title", r.Warnings[0].Field)
	assert.True(t, r.Valid, "title mismatch is a warning, not an error")

	// Unrelated title
	meta.Title = "Take It Easy"
	r = CheckMetadata(meta, "Hotel California")
	assert.Len(t, r.Warnings, 1)

	// Empty expected title skips the check entirely
	r = CheckMetadata(meta, "")
	assert.Empty(t, r.Warnings)
}

func TestIsHTTPURL(t *testing.T) {
	valid := []string{
		"https://example.com",
		"http://example.com/path?q=1",
		"https://sub.example.com:8080/x",
	}
	for _, u := range valid {
		assert.True(t, isHTTPURL(u), "expected %q to be accepted", u)
	}

	invalid := []string{
		"", "not a url", "ftp://example.com", "//example.com",
		"https://", "example.com", "mailto:x@example.com",
	}
	for _, u := range invalid {
		assert.False(t, isHTTPURL(u), "expected %q to be rejected", u)
	}
}
