// Package record flattens Jikan responses into the rows of the CSV datasets.
package record

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Separator joins the values of list-valued columns.
// Values that themselves contain the separator are written as-is and will not survive Split.
const Separator = ", "

// Join concatenates values positionally, keeping empty values as empty tokens.
// It is used for parallel columns that must stay index-aligned.
func Join(values []string) string {
	return strings.Join(values, Separator)
}

// JoinDistinct concatenates the non-empty values, dropping duplicates and keeping first-seen order.
func JoinDistinct(values []string) string {
	return Join(lo.Uniq(lo.Compact(values)))
}

// Split is the inverse of Join. An empty column yields no values,
// so a single empty token, such as the language of one voice actor without one, is lost.
// Use SplitN when the number of values is known.
func Split(column string) []string {
	if column == "" {
		return nil
	}
	return strings.Split(column, Separator)
}

// SplitN splits an index-aligned column into exactly n values,
// padding with empty values or dropping extras as needed.
func SplitN(column string, n int) []string {
	if n <= 0 {
		return nil
	}

	values := make([]string, n)
	copy(values, Split(column))
	return values
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func integer(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func decimal(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
