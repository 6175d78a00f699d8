package textproc

import (
	"errors"
	"strings"

	"github.com/san-kum/corelab/internal/vector"
)

const (
	MaxSortLines = 1000
	EndMarker    = "END"
)

// ErrTooManyLines is returned by Sorter.Add once MaxSortLines are held.
var ErrTooManyLines = errors.New("textproc: maximum number of lines reached")

// Sorter collects lines and sorts them lexicographically.
type Sorter struct {
	lines *vector.Vector[string]
}

func NewSorter() (*Sorter, error) {
	v, err := vector.New[string](0)
	if err != nil {
		return nil, err
	}
	return &Sorter{lines: v}, nil
}

// Add appends line. It fails with ErrTooManyLines when the sorter is full.
func (s *Sorter) Add(line string) error {
	if s.lines.Size() >= MaxSortLines {
		return ErrTooManyLines
	}
	return s.lines.Push(line)
}

func (s *Sorter) Len() int { return s.lines.Size() }

// Lines returns a copy of the collected lines in their current order.
func (s *Sorter) Lines() []string {
	out := make([]string, s.lines.Size())
	copy(out, s.lines.Data())
	return out
}

// Sort orders the lines byte-wise and returns the result.
func (s *Sorter) Sort() ([]string, error) {
	if err := s.lines.Sort(strings.Compare); err != nil {
		return nil, err
	}
	return s.Lines(), nil
}

// Release drops the collected lines.
func (s *Sorter) Release() {
	s.lines.Destroy()
}

// SortLines sorts lines without modifying the input slice.
func SortLines(lines []string) ([]string, error) {
	v, err := vector.From(lines)
	if err != nil {
		return nil, err
	}
	defer v.Destroy()
	if err := v.Sort(strings.Compare); err != nil {
		return nil, err
	}
	out := make([]string, v.Size())
	copy(out, v.Data())
	return out, nil
}
