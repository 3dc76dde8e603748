package model

import "strings"

// StudentFilter contains criteria for filtering students with multiple values per field.
// All criteria are optional; only non-empty slices are applied.
// Within each field, values are combined with OR logic (any value matches).
// Between fields, criteria are combined with AND logic (all fields must match).
type StudentFilter struct {
	// Grades filters by grade (case-insensitive, OR within list)
	Grades []string

	// Rolls filters by roll number (case-insensitive, OR within list)
	Rolls []string
}

// IsEmpty reports whether the filter has no criteria
func (f StudentFilter) IsEmpty() bool {
	return len(f.Grades) == 0 && len(f.Rolls) == 0
}

// FilterStudents returns the students matching the filter, keeping their order.
// An empty filter returns the input slice unchanged.
func FilterStudents(students []Student, filter StudentFilter) []Student {
	if filter.IsEmpty() {
		return students
	}

	gradeMap := lowerSet(filter.Grades)
	rollMap := lowerSet(filter.Rolls)

	var filtered []Student
	for _, s := range students {
		if len(filter.Grades) > 0 && !gradeMap[strings.ToLower(s.Grade)] {
			continue
		}
		if len(filter.Rolls) > 0 && !rollMap[strings.ToLower(s.Roll)] {
			continue
		}
		filtered = append(filtered, s)
	}

	return filtered
}

func lowerSet(values []string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[strings.ToLower(v)] = true
	}
	return m
}
