package tubebank

import (
	"fmt"
	"strings"
)

type Arrangement string

const (
	Aligned   Arrangement = "aligned"
	Staggered Arrangement = "staggered"
)

func (a Arrangement) Valid() bool {
	return a == Aligned || a == Staggered
}

func ParseArrangement(s string) (Arrangement, error) {
	a := Arrangement(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: unknown arrangement %q", ErrInvalidInput, s)
	}
	return a, nil
}
