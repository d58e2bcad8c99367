// Package values turns command-line words and data files into typed
// formatting arguments.
package values

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrShape is returned when a values document is not a list.
var ErrShape = errors.New("values must be a list of values or a list of lists")

// Parse converts words into arguments. Decimal integers become int64 (or
// uint64 past the int64 range), numbers with a digit become float64, "true"
// and "false" become bool, and everything else stays a string.
func Parse(words []string) []any {
	out := make([]any, len(words))
	for i, w := range words {
		out[i] = parseWord(w)
	}
	return out
}

func parseWord(w string) any {
	if i, err := strconv.ParseInt(w, 10, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(w, 10, 64); err == nil {
		return u
	}
	if strings.ContainsAny(w, "0123456789") {
		if f, err := strconv.ParseFloat(w, 64); err == nil {
			return f
		}
	}
	switch w {
	case "true":
		return true
	case "false":
		return false
	}
	return w
}

// Decode reads a YAML (or JSON) document of records. A list of lists yields
// one record per inner list; a flat list is a single record.
func Decode(r io.Reader) ([][]any, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	list, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrShape, doc)
	}
	if len(list) == 0 {
		return nil, nil
	}
	if _, nested := list[0].([]any); !nested {
		return [][]any{list}, nil
	}
	records := make([][]any, len(list))
	for i, item := range list {
		rec, ok := item.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: record %d is %T", ErrShape, i, item)
		}
		records[i] = rec
	}
	return records, nil
}

// LoadFile decodes the records in path. A path of "-" reads standard input.
func LoadFile(path string) ([][]any, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open values file: %w", err)
	}
	defer f.Close()
	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file %s: %w", path, err)
	}
	return records, nil
}
