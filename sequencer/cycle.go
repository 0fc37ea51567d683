package sequencer

import "strings"

// remainingDeps holds the outstanding dependencies of every still-queued item
// during one iteration. items keeps queue order so the cycle search visits
// roots deterministically.
type remainingDeps struct {
	items []string
	deps  map[string][]string
}

func newRemainingDeps(capacity int) *remainingDeps {
	return &remainingDeps{
		items: make([]string, 0, capacity),
		deps:  make(map[string][]string, capacity),
	}
}

func (r *remainingDeps) set(item string, deps []string) {
	if _, ok := r.deps[item]; !ok {
		r.items = append(r.items, item)
	}
	r.deps[item] = deps
}

// visitCache records which (item, dependency) edges the cycle search already
// expanded. One cache lives for a whole Sequence call and is shared by every
// stall, so no edge is expanded twice.
type visitCache map[string]map[string]bool

// enter ensures item has an edge set.
func (v visitCache) enter(item string) {
	if v[item] == nil {
		v[item] = make(map[string]bool)
	}
}

// frame is one level of the explicit depth-first stack.
type frame struct {
	item string
	next int // index of the next dependency to inspect
}

// findCycles enumerates dependency loops among the remaining items.
//
// From each root in queue order it walks outstanding dependencies depth-first.
// Whenever the current item depends on the root, the path from the root to
// the current item is recorded. An edge is descended only the first time it
// is seen in this call (across all roots and all earlier stalls).
//
// The walk uses an explicit stack; the path is the sequence of frame items.
// The result is best-effort: overlapping or repeated loops may be reported.
func findCycles(rem *remainingDeps, visited visitCache) [][]string {
	var cycles [][]string

	for _, root := range rem.items {
		visited.enter(root)
		stack := []frame{{item: root}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := rem.deps[top.item]
			if top.next >= len(deps) {
				stack = stack[:len(stack)-1] // backtrack
				continue
			}
			item, dep := top.item, deps[top.next]
			top.next++

			if dep == root {
				cycles = append(cycles, stackPath(stack))
			}
			if visited[item][dep] {
				continue
			}
			visited[item][dep] = true
			visited.enter(dep)
			stack = append(stack, frame{item: dep})
		}
	}

	return cycles
}

// stackPath copies the items of the stack from bottom to top.
func stackPath(stack []frame) []string {
	path := make([]string, len(stack))
	for i, f := range stack {
		path[i] = f.item
	}

	return path
}

// CycleSignature identifies a cycle independent of its starting item: the
// comma-joined lexicographically minimal rotation. Rotations of the same
// cycle share a signature.
func CycleSignature(cycle []string) string {
	return strings.Join(minimalRotation(cycle), ",")
}

// isSimple reports whether no item repeats in cycle.
func isSimple(cycle []string) bool {
	seen := make(map[string]struct{}, len(cycle))
	for _, item := range cycle {
		if _, dup := seen[item]; dup {
			return false
		}
		seen[item] = struct{}{}
	}

	return true
}

// minimalRotation returns the lexicographically minimal rotation of s using
// Booth's algorithm in O(n) time. s is not modified.
func minimalRotation(s []string) []string {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := make([]string, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)

	fail := make([]int, 2*n)
	for i := range fail {
		fail[i] = -1
	}
	k := 0 // start of the best rotation so far
	for j := 1; j < 2*n; j++ {
		i := fail[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = fail[i]
		}
		if doubled[j] != doubled[k+i+1] {
			// here i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			fail[j-k] = -1
		} else {
			fail[j-k] = i + 1
		}
	}

	out := make([]string, n)
	copy(out, doubled[k:k+n])

	return out
}
