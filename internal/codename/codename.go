// Package codename joins randomly chosen words into a codename.
package codename

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
)

// Defaults used when neither a flag nor the config file supplies a value.
const (
	DefaultNumWords  = 2
	DefaultDelimiter = "-"
)

// ValidDelimiters lists the allowed delimiters in display order.
var ValidDelimiters = []string{"-", ",", "_", "|", ";", ":"}

var (
	ErrInvalidNumWords  = errors.New("invalid number of words")
	ErrInvalidDelimiter = errors.New("invalid delimiter")
)

// ValidationError is a rejected option. It matches its Kind with errors.Is.
type ValidationError struct {
	Kind error
	Msg  string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == e.Kind }

func invalidNum(format string, args ...any) error {
	return &ValidationError{Kind: ErrInvalidNumWords, Msg: fmt.Sprintf(format, args...)}
}

// Source draws a uniform index in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns the process-wide random generator.
func DefaultSource() Source {
	return globalSource{}
}

// Options are the resolved generation parameters.
type Options struct {
	NumWords  int
	Delimiter string
}

// Validate checks NumWords and Delimiter.
func (o Options) Validate() error {
	if o.NumWords < 1 {
		return invalidNum("number of words must be at least 1, got %d", o.NumWords)
	}
	return ValidateDelimiter(o.Delimiter)
}

// ParseNum parses the textual num option.
func ParseNum(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, invalidNum("number of words must be an integer, got %q", s)
	}
	if n < 1 {
		return 0, invalidNum("number of words must be at least 1, got %d", n)
	}
	return n, nil
}

// ValidateDelimiter reports an error naming the allowed set when d is not
// one of ValidDelimiters.
func ValidateDelimiter(d string) error {
	if !IsValidDelimiter(d) {
		return &ValidationError{
			Kind: ErrInvalidDelimiter,
			Msg:  fmt.Sprintf("invalid delimiter %q: must be one of %s", d, strings.Join(ValidDelimiters, " ")),
		}
	}
	return nil
}

// IsValidDelimiter reports whether d is one of ValidDelimiters.
func IsValidDelimiter(d string) bool {
	return slices.Contains(ValidDelimiters, d)
}

// Generate draws n words from words with replacement and joins them with
// delim in draw order. words must be non-empty and n at least 1.
func Generate(src Source, words []string, n int, delim string) string {
	picked := make([]string, n)
	for i := range picked {
		picked[i] = words[src.IntN(len(words))]
	}
	return strings.Join(picked, delim)
}
