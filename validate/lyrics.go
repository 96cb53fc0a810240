package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chordsmith/chordsmith/sections"
)

// truncationIndicators are patterns that suggest the provider returned a
// teaser or index page instead of the full lyrics.
var truncationIndicators = []struct {
	name    string
	pattern *regexp.Regexp
	message string
}{
	{"external_link", regexp.MustCompile(`https?://`), "lyrics contain a link to an external page"},
	{"full_lyrics_at", regexp.MustCompile(`(?i)full lyrics at`), "lyrics reference full lyrics hosted elsewhere"},
	{"lyrics_title", regexp.MustCompile(`(?m)\S Lyrics\s*$`), "lyrics contain a page title ending in \" Lyrics\""},
	{"translations", regexp.MustCompile(`\bTranslations\b`), "lyrics contain a translations index"},
}

// CheckLyrics validates raw lyric text with default parameters.
func CheckLyrics(lyrics string) Result {
	return CheckLyricsWithParams(lyrics, DefaultParams())
}

// CheckLyricsWithParams rejects blank or too-short lyrics as critical and
// raises non-blocking warnings for truncation indicators and weak section
// structure. Blank input returns immediately with the single critical
// finding.
func CheckLyricsWithParams(lyrics string, params Params) Result {
	r := newResult()

	trimmed := strings.TrimSpace(lyrics)
	if trimmed == "" {
		r.addError("lyrics", "lyrics are blank", SeverityCritical)
		return r
	}

	if len(trimmed) < params.MinLyricsLength {
		r.addError("lyrics", fmt.Sprintf(
			"lyrics are %d characters, below the %d character floor",
			len(trimmed), params.MinLyricsLength), SeverityCritical)
	}

	for _, indicator := range truncationIndicators {
		if indicator.pattern.MatchString(lyrics) {
			r.addWarning("lyrics", indicator.message)
		}
	}

	if count := sections.Count(lyrics); count < params.MinSections {
		r.addWarning("lyrics", fmt.Sprintf(
			"only %d structural sections detected (expected at least %d)",
			count, params.MinSections))
	}

	return r
}
