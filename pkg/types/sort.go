package types

import (
	"sort"
	"strings"
)

// Order is the direction of a sort.
type Order string

const (
	OrderAscending  Order = "ASC"
	OrderDescending Order = "DESC"
)

// SortField selects the pull request property a sort compares on.
type SortField string

const (
	// SortByMergedAt compares effective times (merge time, or creation
	// time for unmerged pull requests).
	SortByMergedAt SortField = "mergedAt"
	// SortByTitle compares titles lexicographically.
	SortByTitle SortField = "title"
)

// SortSpec configures SortPullRequests.
type SortSpec struct {
	Order Order
	On    SortField
}

// ParseSortSpec converts the legacy plain-string sort configuration into a
// SortSpec. "DESC" (any case) sorts descending; anything else ascending.
// The legacy form always implies the merge-time property.
func ParseSortSpec(value string) SortSpec {
	order := OrderAscending
	if strings.EqualFold(value, string(OrderDescending)) {
		order = OrderDescending
	}
	return SortSpec{Order: order, On: SortByMergedAt}
}

// SortPullRequests sorts the given pull requests in place and returns the
// slice. Descending order swaps the comparator's arguments rather than
// negating its result, so ties behave identically in both directions.
func SortPullRequests(prs []*PullRequestInfo, spec SortSpec) []*PullRequestInfo {
	sort.SliceStable(prs, func(i, j int) bool {
		if spec.Order == OrderDescending {
			return compare(prs[j], prs[i], spec.On) < 0
		}
		return compare(prs[i], prs[j], spec.On) < 0
	})
	return prs
}

func compare(a, b *PullRequestInfo, on SortField) int {
	if on == SortByMergedAt {
		at, bt := EffectiveTime(a), EffectiveTime(b)
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		default:
			return 0
		}
	}
	// Any other selector falls back to the title comparison.
	return strings.Compare(a.Title, b.Title)
}
