package shared

import (
	"strings"

	"tasklist/shared/dto"
)

// BuildCacheKey joins cache key segments with the conventional colon separator.
func BuildCacheKey(segments ...string) string {
	return strings.Join(segments, ":")
}

// FilterByID builds an equality filter on a single identifier column.
func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByOwner builds the combined identifier + owner predicate. Both
// conditions land in one WHERE clause so a lookup can never match a row
// owned by someone else.
func FilterByOwner(id, userID, fieldID, fieldUserID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
			dto.Filter{
				Field:    fieldUserID,
				Value:    userID,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
