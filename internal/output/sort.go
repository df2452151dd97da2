// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import "sort"

// Orders lists the accepted sort orders.
var Orders = []string{"asc", "desc", "none"}

// SortLines orders lines in place. "desc" sorts descending, "none" leaves the
// slice untouched and anything else sorts ascending. Comparison is bytewise
// and case sensitive so equal inputs always print identically.
func SortLines(lines []string, order string) {
	switch order {
	case "none":
		return
	case "desc":
		sort.Sort(sort.Reverse(sort.StringSlice(lines)))
	default:
		sort.Strings(lines)
	}
}
