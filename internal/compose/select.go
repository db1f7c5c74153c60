package compose

import (
	"errors"
	"fmt"

	"github.com/bnema/xthreads-cli/internal/domain"
)

const (
	StrategyList    = "list"
	StrategyThread  = "thread"
	StrategySegment = "segment"
)

type Strategy struct {
	Name  string
	Parse func(text string) ([]string, error)
}

type Selection struct {
	Strategy string
	Segments []string
}

// Strategies returns the selection order: list, then thread markup, then plain segmentation.
func Strategies(cfg Config) []Strategy {
	return []Strategy{
		{Name: StrategyList, Parse: parseListOfTwo},
		{Name: StrategyThread, Parse: ParseThread},
		{Name: StrategySegment, Parse: func(text string) ([]string, error) {
			return Segment(text, cfg)
		}},
	}
}

func Select(text string, cfg Config) (Selection, error) {
	return SelectWith(text, Strategies(cfg))
}

func SelectWith(text string, strategies []Strategy) (Selection, error) {
	var errs []error
	for _, strategy := range strategies {
		segments, err := strategy.Parse(text)
		if err == nil {
			return Selection{Strategy: strategy.Name, Segments: segments}, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", strategy.Name, err))
	}

	if len(errs) == 0 {
		return Selection{}, errors.New("no composition strategies configured")
	}

	return Selection{}, fmt.Errorf("compose text: %w", errors.Join(errs...))
}

func parseListOfTwo(text string) ([]string, error) {
	items, err := ParseList(text)
	if err != nil {
		return nil, err
	}
	if len(items) < 2 {
		return nil, &domain.ParseError{Parser: "list", Reason: "a list needs at least two items"}
	}
	return items, nil
}
