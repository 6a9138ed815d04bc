// Package consolidate merges repeated prefixed arguments into a single value.
package consolidate

import (
	"strings"

	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/zerr"
)

// Policy describes how the suffixes of a prefix family are folded.
type Policy[T any] struct {
	// Decode turns an argument suffix into a value.
	Decode func(suffix string) (T, error)
	// Encode turns the folded value back into a suffix.
	Encode func(value T) string
	// Seed supplies the initial fold value. A nil Seed starts from the zero value.
	Seed func() T
	// Combine folds the next decoded value into the accumulator.
	Combine func(acc, next T) T
}

// Result is the outcome of one consolidation.
type Result[T any] struct {
	// Value is the folded value, or the seed when nothing matched.
	Value T
	// Matches counts the entries that carried the prefix.
	Matches int
}

// Found reports whether at least one entry carried the prefix.
func (r Result[T]) Found() bool {
	return r.Matches > 0
}

// Args folds every entry of args starting with prefix.
//
// With zero or one matching entry args is returned as is. With two or more,
// every matching entry is dropped and a single prefix+Encode(value) entry is
// appended at the end.
func Args[T any](args []string, prefix string, p Policy[T]) ([]string, Result[T], error) {
	var res Result[T]
	if p.Seed != nil {
		res.Value = p.Seed()
	}

	for _, arg := range args {
		suffix, ok := strings.CutPrefix(arg, prefix)
		if !ok {
			continue
		}
		v, err := p.Decode(suffix)
		if err != nil {
			return args, res, zerr.With(zerr.Wrap(err, "failed to consolidate option"), "option", arg)
		}
		res.Value = p.Combine(res.Value, v)
		res.Matches++
	}

	if res.Matches < 2 {
		return args, res, nil
	}

	out := make([]string, 0, len(args)-res.Matches+1)
	for _, arg := range args {
		if !strings.HasPrefix(arg, prefix) {
			out = append(out, arg)
		}
	}
	out = append(out, prefix+p.Encode(res.Value))
	return out, res, nil
}

// Set applies Args to an ordered set in place.
func Set[T any](set *domain.OrderedSet[string], prefix string, p Policy[T]) (Result[T], error) {
	out, res, err := Args(set.Items(), prefix, p)
	if err != nil {
		return res, err
	}
	if res.Matches > 1 {
		set.Replace(out)
	}
	return res, nil
}

// Replace drops every entry of set starting with prefix and appends prefix+value.
func Replace(set *domain.OrderedSet[string], prefix, value string) {
	items := set.Items()
	out := items[:0]
	for _, item := range items {
		if !strings.HasPrefix(item, prefix) {
			out = append(out, item)
		}
	}
	set.Replace(append(out, prefix+value))
}

// ClampMinToMax lowers the entry carrying minPrefix to the value of the entry
// carrying maxPrefix when it is larger. Repeated entries of either family are
// first reduced to their last occurrence. It reports whether the set changed.
func ClampMinToMax(set *domain.OrderedSet[string], minPrefix, maxPrefix string) (bool, error) {
	maxRes, err := Set(set, maxPrefix, LastWinsSize())
	if err != nil || !maxRes.Found() {
		return false, err
	}
	minRes, err := Set(set, minPrefix, LastWinsSize())
	if err != nil || !minRes.Found() {
		return false, err
	}
	if minRes.Value <= maxRes.Value {
		return false, nil
	}
	Replace(set, minPrefix, domain.FormatSize(maxRes.Value))
	return true, nil
}

// MapList rewrites, in place, every list element of the entries of set
// starting with prefix. Entry order and list order are preserved.
func MapList(set *domain.OrderedSet[string], prefix, sep string, mapEntry func(string) (string, error)) error {
	items := set.Items()
	changed := false
	for i, item := range items {
		suffix, ok := strings.CutPrefix(item, prefix)
		if !ok {
			continue
		}
		parts := strings.Split(suffix, sep)
		for j, part := range parts {
			if part == "" {
				continue
			}
			mapped, err := mapEntry(part)
			if err != nil {
				return zerr.With(err, "option", item)
			}
			parts[j] = mapped
		}
		items[i] = prefix + strings.Join(parts, sep)
		changed = changed || items[i] != item
	}
	if changed {
		set.Replace(items)
	}
	return nil
}
