// Package mex checks whether every prefix/suffix split of a sorted sequence
// has distinct prefix-scan MEX values.
package mex

import "slices"

// ScanMEX walks a sorted run from its start while the k-th element equals k
// and returns the first k where that fails. Duplicates stop the scan, so on
// unsorted or repeated input this is not the set MEX.
func ScanMEX(sorted []int) int {
	k := 0
	for k < len(sorted) && sorted[k] == k {
		k++
	}
	return k
}

// Distinct sorts a copy of values and reports whether no split point gives
// the prefix and the suffix the same ScanMEX.
func Distinct(values []int) bool {
	a := slices.Clone(values)
	slices.Sort(a)

	for i := 1; i < len(a); i++ {
		if ScanMEX(a[:i]) == ScanMEX(a[i:]) {
			return false
		}
	}
	return true
}
