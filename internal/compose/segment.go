package compose

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bnema/xthreads-cli/internal/domain"
)

type Config struct {
	Budget    int
	AutoSplit bool
}

func NewConfig(settings domain.PostingSettings) Config {
	return Config{Budget: domain.SegmentBudget, AutoSplit: settings.AutoSplit}
}

func (c Config) budget() int {
	if c.Budget <= 0 {
		return domain.SegmentBudget
	}
	return c.Budget
}

var sentenceBreak = regexp.MustCompile(`[.?!]\s+`)

// Segment splits text into posts of at most Budget characters, counted in
// runes. A line longer than the budget is broken after sentence punctuation;
// a line without any is emitted whole and may exceed the budget.
func Segment(text string, cfg Config) ([]string, error) {
	var segments []string
	if cfg.AutoSplit {
		segments = accumulate(strings.Split(normalizeNewlines(text), "\n"), "\n", cfg.budget())
	} else {
		segments = []string{text}
	}

	if len(segments) == 1 && strings.TrimSpace(segments[0]) == "" {
		return nil, domain.ErrEmptyInput
	}

	return segments, nil
}

func accumulate(pieces []string, sep string, budget int) []string {
	var (
		out     []string
		current string
		open    bool
	)

	flush := func() {
		if open {
			out = append(out, current)
			current, open = "", false
		}
	}

	for _, piece := range pieces {
		if runeLen(piece) > budget {
			flush()
			sentences := splitSentences(piece)
			if len(sentences) <= 1 {
				out = append(out, piece)
				continue
			}
			out = append(out, accumulate(sentences, " ", budget)...)
			continue
		}

		if !open {
			current, open = piece, true
			continue
		}

		if runeLen(current)+runeLen(piece) <= budget-1 {
			current += sep + piece
			continue
		}

		flush()
		current, open = piece, true
	}
	flush()

	return out
}

func splitSentences(line string) []string {
	breaks := sentenceBreak.FindAllStringIndex(line, -1)
	if len(breaks) == 0 {
		return []string{line}
	}

	sentences := make([]string, 0, len(breaks)+1)
	start := 0
	for _, loc := range breaks {
		// keep the punctuation mark, drop the whitespace after it
		sentence := line[start : loc[0]+1]
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = loc[1]
	}
	if start < len(line) {
		sentences = append(sentences, line[start:])
	}

	return sentences
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}
