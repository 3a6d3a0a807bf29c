// Package redact masks secret values inside log lines before they are
// stored or fanned out. Markers (password, token, api_key...) stay
// visible, the value that follows them is overwritten.
package redact

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Redactor struct {
	matcher  *goahocorasick.Machine
	maskChar rune
	log      *slog.Logger
}

type textMapping struct {
	Normalized []rune
	OrigIdx    []int
}

// NewRedactor initializes the Aho-Corasick automaton with a normalized version of the provided marker list.
// Markers collapsing to the same normalized form (api_key, apikey) are registered once.
func NewRedactor(markers []string, maskChar rune, log *slog.Logger) (Redactor, error) {
	patterns := make([][]rune, 0, len(markers))
	seen := make(map[string]struct{}, len(markers))
	for _, marker := range markers {
		norm := normalizeRunes([]rune(marker))
		// Markers made of pure noise would match everything
		if len(norm) == 0 {
			log.Debug("Skipping empty marker after normalization", slog.String("marker", marker))
			continue
		}
		if _, ok := seen[string(norm)]; ok {
			continue
		}
		seen[string(norm)] = struct{}{}
		patterns = append(patterns, norm)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Redactor{}, err
	}
	return Redactor{matcher: m, maskChar: maskChar, log: log}, nil
}

// Redact locates secret markers and masks the value following each one
// while preserving the rest of the line. It returns the masked line and
// one entry per marker whose value was actually overwritten.
func (r *Redactor) Redact(original string) (string, []string) {
	mapping := normalize(original)
	if len(mapping.Normalized) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	spans := r.matcher.MultiPatternSearch(mapping.Normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	var hits []string
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)

		if normStart < 0 || normEnd > len(mapping.OrigIdx) {
			continue
		}

		// Back to original coordinates: the value starts after the
		// marker's last original rune.
		markerEnd := mapping.OrigIdx[normEnd-1] + 1
		start, end := valueSpan(origRunes, markerEnd)
		if start == end {
			continue
		}

		for i := start; i < end; i++ {
			origRunes[i] = r.maskChar
		}
		hits = append(hits, string(span.Word))
	}

	return string(origRunes), hits
}

// valueSpan finds the secret value following a marker: separators are
// skipped, then either a quoted region or a run up to the next space is
// taken. start == end means the marker carries no value on this line.
func valueSpan(runes []rune, from int) (int, int) {
	i := from
	for i < len(runes) && isSeparator(runes[i]) {
		i++
	}
	if i >= len(runes) {
		return i, i
	}

	if quote := runes[i]; quote == '"' || quote == '\'' {
		start := i + 1
		end := start
		for end < len(runes) && runes[end] != quote {
			end++
		}
		return start, end
	}

	start := i
	end := start
	for end < len(runes) && !unicode.IsSpace(runes[end]) {
		end++
	}
	return start, end
}

// isSeparator identifies the glue between a marker and its value.
func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '=' || r == ':'
}

// normalize transforms the input string into a searchable format and tracks original rune positions.
func normalize(input string) textMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return textMapping{Normalized: norm, OrigIdx: origIdx}
}

// normalizeRunes applies simplification and noise removal to a slice of runes.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common Leet speak characters back to their standard alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// isNoise identifies characters that should be ignored during the pattern matching phase.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
