package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(students []Student) []string {
	out := make([]string, len(students))
	for i, s := range students {
		out[i] = s.Name
	}
	return out
}

func TestSortStudents_Default(t *testing.T) {
	students := testStudents()
	SortStudents(students, SortByDefault)
	assert.Equal(t, []string{"Ann", "bob", "Cara", "Dev"}, names(students))
}

func TestSortStudents_ByNameCaseInsensitive(t *testing.T) {
	students := []Student{
		NewStudent("cara", "R1", "A", "c@x.com"),
		NewStudent("Bob", "R2", "A", "b@x.com"),
		NewStudent("ann", "R3", "A", "a@x.com"),
	}
	SortStudents(students, SortByName)
	assert.Equal(t, []string{"ann", "Bob", "cara"}, names(students))
}

func TestSortStudents_ByGradeStable(t *testing.T) {
	students := testStudents()
	SortStudents(students, SortByGrade)
	// Ann and Cara share a grade and keep their relative order
	assert.Equal(t, []string{"Ann", "Cara", "bob", "Dev"}, names(students))
}

func TestSortStudents_ByRoll(t *testing.T) {
	students := []Student{
		NewStudent("x", "R9", "A", "x@x.com"),
		NewStudent("y", "r1", "A", "y@x.com"),
		NewStudent("z", "R5", "A", "z@x.com"),
	}
	SortStudents(students, SortByRoll)
	assert.Equal(t, []string{"y", "z", "x"}, names(students))
}

func TestParseSortBy(t *testing.T) {
	for _, s := range []string{"", "name", "ROLL", "grade", "email"} {
		_, err := ParseSortBy(s)
		assert.NoError(t, err, s)
	}

	got, err := ParseSortBy("Email")
	require.NoError(t, err)
	assert.Equal(t, SortByEmail, got)

	_, err = ParseSortBy("validate-time")
	assert.Error(t, err)
}
