// Package words loads and filters dictionary word lists.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// DefaultPath is the conventional location of the system word list.
const DefaultPath = "/usr/share/dict/words"

// MinLength is the shortest word, in letters, that survives filtering.
const MinLength = 3

// MaxFileSize caps how much of a dictionary file is read into memory.
const MaxFileSize = 64 << 20

// Error kinds returned (wrapped in a *LoadError) by Load.
var (
	ErrNotFound        = errors.New("dictionary file not found")
	ErrIOFailure       = errors.New("dictionary file unreadable")
	ErrEmptyDictionary = errors.New("no valid words found in dictionary")
	ErrTooLarge        = errors.New("dictionary file too large")
)

// LoadError describes a failure to load the dictionary at Path.
type LoadError struct {
	Kind error
	Path string
	Err  error // underlying cause, may be nil
	Size int64 // file size, set for ErrTooLarge
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case ErrNotFound:
		return fmt.Sprintf("dictionary file not found at %s", e.Path)
	case ErrEmptyDictionary:
		return fmt.Sprintf("no valid words found in dictionary at %s", e.Path)
	case ErrTooLarge:
		return fmt.Sprintf("dictionary file %s is %s, limit is %s",
			e.Path, humanize.IBytes(uint64(e.Size)), humanize.IBytes(MaxFileSize))
	default:
		cause := e.Err
		var pe *fs.PathError
		if errors.As(cause, &pe) {
			cause = pe.Err
		}
		return fmt.Sprintf("reading dictionary file %s: %v", e.Path, cause)
	}
}

// Is lets errors.Is match a LoadError against its kind.
func (e *LoadError) Is(target error) bool {
	return target == e.Kind
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the dictionary at path and returns its usable words in file
// order. Duplicates are kept.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Kind: ErrNotFound, Path: path, Err: err}
		}
		return nil, &LoadError{Kind: ErrIOFailure, Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &LoadError{Kind: ErrIOFailure, Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &LoadError{Kind: ErrIOFailure, Path: path, Err: errors.New("is a directory")}
	}
	if info.Size() > MaxFileSize {
		return nil, &LoadError{Kind: ErrTooLarge, Path: path, Size: info.Size()}
	}

	words, err := Read(io.LimitReader(f, MaxFileSize))
	if err != nil {
		return nil, &LoadError{Kind: ErrIOFailure, Path: path, Err: err}
	}
	if len(words) == 0 {
		return nil, &LoadError{Kind: ErrEmptyDictionary, Path: path}
	}
	return words, nil
}

// Read scans one candidate word per line from r and returns the usable ones,
// trimmed and lowercased. Lines may be as long as MaxFileSize. An empty
// result is not an error here.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxFileSize+1)
	for scanner.Scan() {
		if w, ok := Normalize(scanner.Text()); ok {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Normalize trims and lowercases line, reporting whether the result is a
// usable word.
func Normalize(line string) (string, bool) {
	w := strings.TrimSpace(line)
	if !IsUsable(w) {
		return "", false
	}
	return strings.ToLower(w), true
}

// IsUsable reports whether w has at least MinLength characters and every
// character is a letter.
func IsUsable(w string) bool {
	if utf8.RuneCountInString(w) < MinLength {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
