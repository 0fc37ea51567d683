package sequencer

import (
	"fmt"
	"sort"
)

// Violations lists every dependency edge x -> d that r does not honor:
// rank(d) <= rank(x) and d is scheduled in a later chunk than x.
//
// The list is sorted by Item, then Dependency. It is empty for any result
// Sequence reported as Safe. g and groups must pass Validate, and r must
// schedule every item of g.
func Violations(g Graph, groups Groups, r *Result) ([]Violation, error) {
	if err := Validate(g, groups); err != nil {
		return nil, fmt.Errorf("sequencer: Violations: %w", err)
	}
	if r == nil {
		return nil, fmt.Errorf("sequencer: Violations: nil result: %w", ErrInvalidInput)
	}
	rank, err := Ranks(groups)
	if err != nil {
		return nil, fmt.Errorf("sequencer: Violations: %w", err)
	}

	at := r.ChunkOf()
	for item := range g {
		if _, ok := at[item]; !ok {
			return nil, fmt.Errorf("sequencer: Violations: item %q not scheduled: %w", item, ErrInvalidInput)
		}
	}

	var out []Violation
	for item, deps := range g {
		for _, dep := range deps {
			if rank[dep] > rank[item] {
				continue
			}
			if at[dep] > at[item] {
				out = append(out, Violation{Item: item, Dependency: dep})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Item != out[j].Item {
			return out[i].Item < out[j].Item
		}
		return out[i].Dependency < out[j].Dependency
	})

	return out, nil
}
