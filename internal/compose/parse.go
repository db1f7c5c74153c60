package compose

import (
	"strings"

	"github.com/bnema/xthreads-cli/internal/domain"
)

const (
	ThreadStart     = "THREAD START"
	ThreadEnd       = "THREAD END"
	ThreadSeparator = "\n---\n"
	ListItemPrefix  = "- "
)

func ParseThread(text string) ([]string, error) {
	lines := strings.Split(normalizeNewlines(text), "\n")

	start, end := -1, -1
	for i, line := range lines {
		if start < 0 {
			if line == ThreadStart {
				start = i
			}
			continue
		}
		if line == ThreadEnd {
			end = i
			break
		}
	}

	if start < 0 {
		return nil, &domain.ParseError{Parser: "thread", Reason: "missing " + ThreadStart + " line"}
	}
	if end < 0 {
		return nil, &domain.ParseError{Parser: "thread", Reason: "missing " + ThreadEnd + " line"}
	}

	content := strings.Join(lines[start+1:end], "\n")
	if strings.TrimSpace(content) == "" {
		return nil, &domain.ParseError{Parser: "thread", Reason: "no content between sentinels"}
	}

	var segments []string
	for _, piece := range strings.Split(content, ThreadSeparator) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		segments = append(segments, piece)
	}

	if len(segments) == 0 {
		return nil, &domain.ParseError{Parser: "thread", Reason: "only separators between sentinels"}
	}

	return segments, nil
}

func ParseList(text string) ([]string, error) {
	var items []string
	for _, line := range strings.Split(normalizeNewlines(text), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, ListItemPrefix) {
			continue
		}
		items = append(items, strings.TrimSpace(strings.TrimPrefix(trimmed, ListItemPrefix)))
	}

	if len(items) == 0 {
		return nil, &domain.ParseError{Parser: "list", Reason: "no lines starting with \"- \""}
	}

	return items, nil
}
