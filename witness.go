package fineman

import (
	"context"

	"github.com/gofineman/fineman/bfd"
	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/weight"
)

// verifyNonNegativeAndExtractWitness runs a direct cycle-detecting
// super-source scan over the elimination loop's output as a final
// safety check, and on detection walks the predecessor chain back to a
// witness cycle.
//
// Grounded on dfs/cycle.go's three-color DFS cycle recorder, adapted
// from a DFS back-edge walk to a predecessor-chain walk (the natural
// shape for a Bellman-Ford-family detector, which has no DFS stack to
// read a back edge off of): starting from the vertex the extra
// relaxation round still improved, |V| steps along parent pointers is
// guaranteed by the pigeonhole principle to re-enter the cycle, after
// which walking parent pointers again until the start vertex
// reappears recovers the cycle itself.
func verifyNonNegativeAndExtractWitness[W weight.Number](ctx context.Context, g *graph.Graph[W], lim weight.Limits[W]) (bool, []int, error) {
	n := g.NumVertices()
	_, parent, signal, err := bfd.SuperSourceBFD(ctx, g, n, lim, true)
	if err != nil {
		return false, nil, err
	}
	if !signal.Detected {
		return false, nil, nil
	}
	return true, extractWitness(parent, signal.Vertex, n), nil
}

// translateWitness maps a witness cycle's vertex ids, drawn from the
// reachable-subgraph id space restrictToReachable built, back onto the
// caller's original vertex ids. Ids beyond len(toOriginal) name
// auxiliary vertices preprocessing introduced and have no original
// counterpart, so they pass through unchanged.
func translateWitness(witness []int, toOriginal []int) []int {
	if witness == nil {
		return nil
	}
	out := make([]int, len(witness))
	for i, v := range witness {
		if v >= 0 && v < len(toOriginal) {
			out[i] = toOriginal[v]
		} else {
			out[i] = v
		}
	}
	return out
}

// extractWitness walks n steps along parent from start (guaranteed by
// pigeonhole to land inside a cycle), then walks again until the
// landing vertex reappears, and canonicalizes the resulting cycle to
// its lexicographically minimal rotation (or that of its reversal,
// whichever is smaller) so that two witnesses describing the same
// cycle compare equal regardless of which vertex the scan happened to
// flag.
func extractWitness(parent map[int]int, start, n int) []int {
	cur := start
	for i := 0; i < n; i++ {
		p, ok := parent[cur]
		if !ok || p == bfd.NoPredecessor {
			return nil
		}
		cur = p
	}

	cycle := []int{cur}
	next := parent[cur]
	for next != cur {
		if next == bfd.NoPredecessor {
			return nil
		}
		cycle = append(cycle, next)
		next = parent[next]
	}

	return canonicalCycle(cycle)
}

// canonicalCycle picks the lexicographically smaller of cycle's
// minimal rotation and its reversal's minimal rotation.
func canonicalCycle(cycle []int) []int {
	rotF := minimalRotation(cycle)
	rotB := minimalRotation(reverseInts(cycle))
	if compareInts(rotB, rotF) < 0 {
		return rotB
	}
	return rotF
}

func reverseInts(s []int) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}
	return out
}

func compareInts(a, b []int) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// minimalRotation implements Booth's algorithm to find the
// lexicographically minimal rotation of s in O(n).
func minimalRotation(s []int) []int {
	n := len(s)
	doubled := make([]int, 2*n)
	copy(doubled, s)
	copy(doubled[n:], s)

	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]int, n)
	for i := 0; i < n; i++ {
		res[i] = doubled[k+i]
	}
	return res
}
