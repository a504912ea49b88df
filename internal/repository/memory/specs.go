package memory

import (
	"sort"
	"time"

	"chat-space-be/internal/repository/specification"
)

// splitSpecs separates ordering from filtering so the repositories can apply
// filters first and sort afterwards, the way the SQL implementations do.
func splitSpecs(specs []specification.Specification) (filters []specification.Specification, order *specification.OrderBy) {
	for _, spec := range specs {
		if o, ok := spec.(specification.OrderBy); ok {
			o := o
			order = &o
			continue
		}
		filters = append(filters, spec)
	}
	return filters, order
}

// sortByCreatedAt orders a slice by its created_at timestamp. The in-memory
// repositories only support time ordering, which is all the services use.
func sortByCreatedAt[T any](items []T, createdAt func(T) time.Time, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return createdAt(items[i]).After(createdAt(items[j]))
		}
		return createdAt(items[i]).Before(createdAt(items[j]))
	})
}
