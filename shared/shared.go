package shared

import (
	"strings"

	"sorabora/shared/constant"
	"sorabora/shared/dto"
)

// JoinGuestName concatenates the trimmed first and last name with a single
// space, trimming the result so a missing half never leaves stray spaces.
func JoinGuestName(first, last string) string {
	name := strings.TrimSpace(first) + constant.Space + strings.TrimSpace(last)

	return strings.TrimSpace(name)
}

// BuildCacheKey joins cache key parts with ':'.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// FilterByField builds a single-field equality filter group.
func FilterByField(value any, field, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
