package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodLyrics = "[Verse 1]\n" +
	"On a dark desert highway, cool wind in my hair\n" +
	"Warm smell of colitas rising up through the air\n\n" +
	"[Chorus]\n" +
	"Welcome to the Hotel California\n" +
	"Such a lovely place, such a lovely face"

func TestCheckLyricsValid(t *testing.T) {
	r := CheckLyrics(goodLyrics)
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
}

func TestCheckLyricsBlank(t *testing.T) {
	for _, lyrics := range []string{"", "   ", "\n\n\t"} {
		r := CheckLyrics(lyrics)
		assert.False(t, r.Valid)
		require.Len(t, r.Errors, 1, "lyrics %q", lyrics)
		assert.Equal(t, SeverityCritical, r.Errors[0].Severity)
		assert.Empty(t, r.Warnings, "blank lyrics return before the structural checks")
	}
}

func TestCheckLyricsTooShort(t *testing.T) {
	r := CheckLyrics("la la la")
	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, SeverityCritical, r.Errors[0].Severity)
	assert.Contains(t, r.Errors[0].Message, "below the 100 character floor")

	// One unstructured block also draws the weak-structure warning
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0].Message, "sections")
}

func TestCheckLyricsTruncationIndicators(t *testing.T) {
	lyrics := "Hotel California Lyrics\n" +
		"On a dark desert highway, cool wind in my hair\n" +
		"Full lyrics at https://lyrics.example.com\n" +
		"Translations"

	r := CheckLyrics(lyrics)

	// Long enough to pass the length floor; every finding is a warning
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)

	messages := make([]string, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		messages = append(messages, w.Message)
	}
	assert.Contains(t, messages, "lyrics contain a link to an external page")
	assert.Contains(t, messages, "lyrics reference full lyrics hosted elsewhere")
	assert.Contains(t, messages, "lyrics contain a page title ending in \" Lyrics\"")
	assert.Contains(t, messages, "lyrics contain a translations index")
	assert.Len(t, r.Warnings, 5, "four indicators plus the weak-structure warning")
}

func TestCheckLyricsCustomParams(t *testing.T) {
	params := DefaultParams()
	params.MinLyricsLength = 5
	params.MinSections = 1

	r := CheckLyricsWithParams("la la la", params)
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
}
