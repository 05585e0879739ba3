// Package transform turns a flat set of spreadsheet cells into structured
// records. It is pure: no I/O, no shared state, safe for concurrent use.
package transform

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// ErrInvalidColumnIdentifier indicates a malformed or wrongly typed column identifier.
var ErrInvalidColumnIdentifier = errors.New("invalid column identifier")

// ErrInvalidColumnFormat indicates a column label with characters outside a-z.
var ErrInvalidColumnFormat = fmt.Errorf("%w: format is invalid", ErrInvalidColumnIdentifier)

// ErrInvalidColumnType indicates a column identifier that is neither text nor a number.
var ErrInvalidColumnType = fmt.Errorf("%w: value type is invalid", ErrInvalidColumnIdentifier)

// ParseColumn converts a column identifier to its 1-based index.
// Numbers pass through; strings of digits are read as numbers; other strings
// are base-26 letter labels ("a" = 1, "z" = 26, "aa" = 27). Spaces and
// periods in labels are ignored, as is letter case. Labels past MaxRow are
// rejected.
func ParseColumn(id interface{}) (int, error) {
	switch v := id.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %v", ErrInvalidColumnFormat, v)
		}
		return int(v), nil
	case string:
		return parseColumnLabel(v)
	}
	return 0, fmt.Errorf("%w: %T", ErrInvalidColumnType, id)
}

func parseColumnLabel(s string) (int, error) {
	label := strings.TrimSpace(s)
	if n, err := strconv.Atoi(label); err == nil {
		return n, nil
	}
	label = strings.NewReplacer(" ", "", ".", "").Replace(label)
	label = strings.ToLower(label)
	if label == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColumnFormat, s)
	}

	total := 0
	weight := 1
	for i := len(label) - 1; i >= 0; i-- {
		idx := strings.IndexByte(alphabet, label[i])
		if idx < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColumnFormat, s)
		}
		total += (idx + 1) * weight
		if total > MaxRow {
			return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidColumnFormat, s)
		}
		weight *= len(alphabet)
	}
	return total, nil
}

// ColumnName returns the lower-case letter label of a 1-based column index.
func ColumnName(n int) string {
	if n < 1 {
		return ""
	}
	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, alphabet[n%len(alphabet)])
		n /= len(alphabet)
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
