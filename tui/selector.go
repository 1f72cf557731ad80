package tui

import (
	"fmt"

	"github.com/pokedex-cli/pokedex/filter"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type labeled interface {
	comparable
	fmt.Stringer
}

// selector cycles through "all" followed by its options.
type selector[T labeled] struct {
	title   string
	options []T
	// -1 selects all
	index int
}

func newSelector[T labeled](title string, options []T) selector[T] {
	return selector[T]{title: title, options: options, index: -1}
}

func (s *selector[T]) next() {
	s.index++
	if s.index >= len(s.options) {
		s.index = -1
	}
}

func (s *selector[T]) reset() {
	s.index = -1
}

// setOptions replaces the options, keeping the current selection if it is still offered.
func (s *selector[T]) setOptions(options []T) {
	current := s.value()
	s.options = options
	s.index = -1
	if v, ok := current.Get(); ok {
		s.index = lo.IndexOf(options, v)
	}
}

func (s *selector[T]) value() mo.Option[T] {
	if s.index < 0 || s.index >= len(s.options) {
		return mo.None[T]()
	}
	return mo.Some(s.options[s.index])
}

func (s *selector[T]) label() string {
	if v, ok := s.value().Get(); ok {
		return v.String()
	}
	return filter.All
}
