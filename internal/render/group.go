package render

import "newsdash/internal/domain/entity"

// Fallback group keys for entries missing the grouping field.
const (
	UncategorizedKey = "Uncategorized"
	UnknownSourceKey = "Unknown Source"
)

// Group is an ordered bucket of entries sharing one grouping key. Entries
// keep their relative input order; keys appear in first-seen order.
type Group struct {
	Key     string
	Entries []entity.Entry
}

// GroupByCategory buckets entries by category, putting entries without one
// under "Uncategorized".
func GroupByCategory(entries []entity.Entry) []Group {
	return groupBy(entries, func(e entity.Entry) string { return e.Category }, UncategorizedKey)
}

// GroupBySource buckets entries by source display name, putting entries
// without one under "Unknown Source".
func GroupBySource(entries []entity.Entry) []Group {
	return groupBy(entries, func(e entity.Entry) string { return e.Source }, UnknownSourceKey)
}

func groupBy(entries []entity.Entry, key func(entity.Entry) string, fallback string) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, e := range entries {
		k := key(e)
		if k == "" {
			k = fallback
		}
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}
