package consolidate

import (
	"strconv"
	"strings"

	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/zerr"
)

func identity(s string) (string, error) { return s, nil }

// LastWins keeps the value of the last matching entry.
func LastWins() Policy[string] {
	return Policy[string]{
		Decode:  identity,
		Encode:  func(v string) string { return v },
		Combine: func(_, next string) string { return next },
	}
}

// LastWinsSize keeps the last memory size of a prefix family.
func LastWinsSize() Policy[int64] {
	return Policy[int64]{
		Decode:  domain.ParseSize,
		Encode:  domain.FormatSize,
		Combine: func(_, next int64) int64 { return next },
	}
}

// MaxSize keeps the largest memory size, starting from seed bytes.
func MaxSize(seed int64) Policy[int64] {
	return Policy[int64]{
		Decode:  domain.ParseSize,
		Encode:  domain.FormatSize,
		Seed:    func() int64 { return seed },
		Combine: func(acc, next int64) int64 { return max(acc, next) },
	}
}

// MinSize keeps the smallest memory size, starting from seed bytes.
func MinSize(seed int64) Policy[int64] {
	return Policy[int64]{
		Decode:  domain.ParseSize,
		Encode:  domain.FormatSize,
		Seed:    func() int64 { return seed },
		Combine: func(acc, next int64) int64 { return min(acc, next) },
	}
}

// Sum adds up integer values.
func Sum() Policy[int64] {
	return Policy[int64]{
		Decode: func(s string) (int64, error) {
			n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return 0, zerr.With(domain.ErrInvalidNumber, "value", s)
			}
			return n, nil
		},
		Encode:  func(v int64) string { return strconv.FormatInt(v, 10) },
		Combine: func(acc, next int64) int64 { return acc + next },
	}
}

// ListUnion unions sep delimited lists into one insertion ordered list.
// Each list entry is passed through mapEntry when it is not nil.
func ListUnion(sep string, mapEntry func(string) (string, error)) Policy[*domain.OrderedSet[string]] {
	if mapEntry == nil {
		mapEntry = identity
	}
	return Policy[*domain.OrderedSet[string]]{
		Decode: func(s string) (*domain.OrderedSet[string], error) {
			out := domain.NewOrderedSet[string]()
			for _, entry := range strings.Split(s, sep) {
				if entry == "" {
					continue
				}
				mapped, err := mapEntry(entry)
				if err != nil {
					return nil, err
				}
				out.Add(mapped)
			}
			return out, nil
		},
		Encode: func(v *domain.OrderedSet[string]) string {
			return strings.Join(v.Items(), sep)
		},
		Seed: func() *domain.OrderedSet[string] { return domain.NewOrderedSet[string]() },
		Combine: func(acc, next *domain.OrderedSet[string]) *domain.OrderedSet[string] {
			acc.Add(next.Items()...)
			return acc
		},
	}
}
