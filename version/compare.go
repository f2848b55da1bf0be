package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Compare orders two major.minor.patch versions; an optional "v" prefix is ignored.
// It returns 1 if a > b, -1 if a < b, and 0 if they are equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		switch {
		case av[i] > bv[i]:
			return 1, nil
		case av[i] < bv[i]:
			return -1, nil
		}
	}

	return 0, nil
}

func parse(s string) (v [3]int, err error) {
	parts := strings.SplitN(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".", 3)
	if len(parts) != 3 {
		return v, fmt.Errorf("invalid version %q", s)
	}

	for i, part := range parts {
		// Pre-release and build suffixes do not take part in the ordering.
		part, _, _ = strings.Cut(part, "-")
		if v[i], err = strconv.Atoi(part); err != nil {
			return v, fmt.Errorf("invalid version %q: %w", s, err)
		}
	}

	return v, nil
}
