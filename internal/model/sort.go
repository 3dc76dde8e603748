package model

import (
	"fmt"
	"sort"
	"strings"
)

// SortBy specifies the field used for sorting students
type SortBy string

const (
	SortByName    SortBy = "name"
	SortByRoll    SortBy = "roll"
	SortByGrade   SortBy = "grade"
	SortByEmail   SortBy = "email"
	SortByDefault SortBy = "" // Insertion order
)

// ParseSortBy validates a sort field name. The empty string selects insertion order.
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(strings.ToLower(s)) {
	case SortByName, SortByRoll, SortByGrade, SortByEmail, SortByDefault:
		return SortBy(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("invalid sort field %q (must be name, roll, grade, or email)", s)
}

// SortStudents sorts a slice of students in place. The sort is stable and
// case-insensitive, so students with equal keys keep their insertion order.
// SortByDefault leaves the slice untouched.
func SortStudents(students []Student, sortBy SortBy) {
	var key func(Student) string
	switch sortBy {
	case SortByName:
		key = func(s Student) string { return s.Name }
	case SortByRoll:
		key = func(s Student) string { return s.Roll }
	case SortByGrade:
		key = func(s Student) string { return s.Grade }
	case SortByEmail:
		key = func(s Student) string { return s.Email }
	default:
		return
	}

	sort.SliceStable(students, func(i, j int) bool {
		return strings.ToLower(key(students[i])) < strings.ToLower(key(students[j]))
	})
}
