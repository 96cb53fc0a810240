package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chordsmith/chordsmith/chord"
	"github.com/chordsmith/chordsmith/logging"
	"github.com/chordsmith/chordsmith/sections"
)

var bracketTokenPattern = regexp.MustCompile(`\[([^\[\]]+)\]`)

// CheckSong runs the composite song check with default parameters.
func CheckSong(meta SongMetadata, lyrics string) Result {
	return CheckSongWithParams(meta, lyrics, DefaultParams())
}

// CheckSongWithParams unions the metadata findings with structural checks
// over the lyric text: a critical error when no sections are present, and
// warnings counting blank sections and bracketed tokens that are not
// chord-shaped.
func CheckSongWithParams(meta SongMetadata, lyrics string, params Params) Result {
	r := CheckMetadataWithParams(meta, "", params)

	parsed := sections.Parse(lyrics)
	if len(parsed) == 0 {
		r.addError("sections", "no song sections detected", SeverityCritical)
	}

	blank := 0
	for _, s := range parsed {
		if strings.TrimSpace(s.Content) == "" {
			blank++
		}
	}
	if blank > 0 {
		r.addWarning("sections", fmt.Sprintf("%d sections have no content", blank))
	}

	// Section header lines use the same bracket notation as chords and are
	// not chord tokens.
	unrecognized := 0
	for _, line := range strings.Split(lyrics, "\n") {
		if sections.IsHeader(line) {
			continue
		}
		for _, m := range bracketTokenPattern.FindAllStringSubmatch(line, -1) {
			if !chord.IsChordLike(m[1]) {
				unrecognized++
			}
		}
	}
	if unrecognized > 0 {
		r.addWarning("chords", fmt.Sprintf("%d bracketed tokens are not recognizable chords", unrecognized))
	}

	return r
}

// Options controls a ValidateSong run. RetryCount is bookkeeping the caller
// maintains across repeated fetch attempts; the validator itself never
// retries, sleeps, or re-invokes anything.
type Options struct {
	ExpectedTitle string
	RetryCount    int
}

// ValidateSong runs the metadata check followed by the lyrics check. When a
// check fails and the caller's retry budget is exhausted, that single
// failing result is returned immediately and the remaining check is
// skipped; this is a cost-control early exit, not error masking. Otherwise
// the union of both results is returned with validity recomputed.
func ValidateSong(meta SongMetadata, lyrics string, opts Options) Result {
	return ValidateSongWithParams(meta, lyrics, opts, DefaultParams())
}

// ValidateSongWithParams is ValidateSong with explicit policy thresholds.
func ValidateSongWithParams(meta SongMetadata, lyrics string, opts Options, params Params) Result {
	metaResult := CheckMetadataWithParams(meta, opts.ExpectedTitle, params)
	if !metaResult.Valid && opts.RetryCount >= params.MaxRetries {
		logging.Warn("metadata rejected with retry budget exhausted", logging.Fields{
			"song_id": meta.ID,
			"retries": opts.RetryCount,
		})
		return metaResult
	}

	lyricsResult := CheckLyricsWithParams(lyrics, params)
	if !lyricsResult.Valid && opts.RetryCount >= params.MaxRetries {
		logging.Warn("lyrics rejected with retry budget exhausted", logging.Fields{
			"song_id": meta.ID,
			"retries": opts.RetryCount,
		})
		return lyricsResult
	}

	metaResult.Merge(lyricsResult)

	logging.Debug("song validated", logging.Fields{
		"song_id":  meta.ID,
		"valid":    metaResult.Valid,
		"errors":   len(metaResult.Errors),
		"warnings": len(metaResult.Warnings),
	})

	return metaResult
}
