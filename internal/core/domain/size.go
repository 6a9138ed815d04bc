package domain

import (
	"math"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

const (
	kib = int64(1) << 10
	mib = kib << 10
	gib = mib << 10
	tib = gib << 10
)

var sizeUnits = []struct {
	suffix string
	factor int64
}{
	{"t", tib},
	{"g", gib},
	{"m", mib},
	{"k", kib},
}

// ParseSize parses a memory size such as 512m or 4G into bytes.
func ParseSize(v string) (int64, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	factor := int64(1)
	for _, u := range sizeUnits {
		if strings.HasSuffix(s, u.suffix) {
			factor = u.factor
			s = strings.TrimSuffix(s, u.suffix)
			break
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 || n > math.MaxInt64/factor {
		return 0, zerr.With(ErrInvalidSize, "value", v)
	}
	return n * factor, nil
}

// FormatSize renders bytes using the largest unit that divides it exactly.
func FormatSize(n int64) string {
	if n > 0 {
		for _, u := range sizeUnits {
			if n%u.factor == 0 {
				return strconv.FormatInt(n/u.factor, 10) + u.suffix
			}
		}
	}
	return strconv.FormatInt(n, 10)
}

// GiB returns n gibibytes in bytes.
func GiB(n int64) int64 {
	return n * gib
}
