package models

// FilterCriteria carries the optional meal catalog predicates. A nil
// protein or carb filter means "any"; an empty component list requires
// nothing. Active predicates combine with AND.
type FilterCriteria struct {
	Protein    *string
	Carb       *string
	Components []string
}

func (criteria FilterCriteria) IsActive() bool {
	return criteria.Protein != nil || criteria.Carb != nil || len(criteria.Components) > 0
}
