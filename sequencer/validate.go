package sequencer

import (
	"sort"
	"strings"
)

// Validate checks the preconditions of Sequence without scheduling anything.
//
// Checks, in order:
//  1. no item is listed twice across groups (ErrAmbiguousGroup);
//  2. graph keys and group items are the same set (*MismatchError);
//  3. every dependency is a graph key (ErrUnknownDependency).
//
// Every returned error satisfies errors.Is(err, ErrInvalidInput).
func Validate(g Graph, groups Groups) error {
	// 1. Duplicate group membership
	if _, err := Ranks(groups); err != nil {
		return err
	}

	// 2. Graph keys vs group items
	inGroups := make(map[string]struct{})
	for _, item := range groups.Items() {
		inGroups[item] = struct{}{}
	}
	var missing, extra []string
	for item := range g {
		if _, ok := inGroups[item]; !ok {
			missing = append(missing, item)
		}
	}
	for item := range inGroups {
		if _, ok := g[item]; !ok {
			extra = append(extra, item)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		sort.Strings(missing)
		sort.Strings(extra)
		return &MismatchError{Missing: missing, Extra: extra}
	}

	// 3. Dangling dependencies
	var dangling []string
	for item, deps := range g {
		for _, dep := range deps {
			if _, ok := g[dep]; !ok {
				dangling = append(dangling, item+" -> "+dep)
			}
		}
	}
	if len(dangling) > 0 {
		sort.Strings(dangling)
		return invalidf(ErrUnknownDependency, "%s", strings.Join(dangling, ", "))
	}

	return nil
}

// Ranks maps every item to the index of the group containing it.
// An item listed more than once, in the same group or in several, fails with
// ErrAmbiguousGroup.
func Ranks(groups Groups) (map[string]int, error) {
	rank := make(map[string]int)
	var dups []string
	for i, group := range groups {
		for _, item := range group {
			if _, seen := rank[item]; seen {
				dups = append(dups, item)
				continue
			}
			rank[item] = i
		}
	}
	if len(dups) > 0 {
		sort.Strings(dups)
		return nil, invalidf(ErrAmbiguousGroup, "%s", strings.Join(dedupSorted(dups), ", "))
	}

	return rank, nil
}

// dedupSorted removes adjacent duplicates from a sorted slice in place.
func dedupSorted(s []string) []string {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}
