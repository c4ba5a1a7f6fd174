package entities

import (
	"math/big"
	"sort"
	"strings"
)

// CompareExecutionIDs orders execution identifiers: -1 if a < b, 0 if equal,
// 1 if a > b. Purely numeric ids compare by value and rank below every other
// id; the rest compare lexically, which matches creation order for UUIDv7.
// The two classes never interleave, so the order stays total on mixed sets.
func CompareExecutionIDs(a, b string) int {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	na, okA := new(big.Int).SetString(a, 10)
	nb, okB := new(big.Int).SetString(b, 10)
	switch {
	case okA && okB:
		return na.Cmp(nb)
	case okA:
		return -1
	case okB:
		return 1
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// SortLatestFirst returns a copy of executions ordered by descending id.
func SortLatestFirst(executions []TestExecution) []TestExecution {
	out := make([]TestExecution, len(executions))
	copy(out, executions)
	sort.SliceStable(out, func(i, j int) bool {
		return CompareExecutionIDs(out[i].ID, out[j].ID) > 0
	})
	return out
}

// SelectLatest picks the authoritative execution of an order: the one with
// the highest id. ok is false for an empty list.
func SelectLatest(executions []TestExecution) (latest TestExecution, ok bool) {
	for i, e := range executions {
		if i == 0 || CompareExecutionIDs(e.ID, latest.ID) > 0 {
			latest = e
		}
	}
	return latest, len(executions) > 0
}
