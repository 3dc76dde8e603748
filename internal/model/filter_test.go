package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testStudents() []Student {
	return []Student{
		NewStudent("Ann", "R1", "A+", "ann@x.com"),
		NewStudent("bob", "R2", "B", "bob@x.com"),
		NewStudent("Cara", "r3", "a+", "cara@x.com"),
		NewStudent("Dev", "R4", "C", "dev@x.com"),
	}
}

func TestFilterStudents_EmptyFilter(t *testing.T) {
	students := testStudents()
	result := FilterStudents(students, StudentFilter{})
	assert.Equal(t, students, result)
}

func TestFilterStudents_GradeCaseInsensitive(t *testing.T) {
	result := FilterStudents(testStudents(), StudentFilter{Grades: []string{"A+"}})
	if assert.Len(t, result, 2) {
		assert.Equal(t, "Ann", result[0].Name)
		assert.Equal(t, "Cara", result[1].Name)
	}
}

func TestFilterStudents_MultipleGrades(t *testing.T) {
	result := FilterStudents(testStudents(), StudentFilter{Grades: []string{"b", "c"}})
	assert.Len(t, result, 2)
}

func TestFilterStudents_CombinedFilters(t *testing.T) {
	filter := StudentFilter{
		Grades: []string{"a+"},
		Rolls:  []string{"R3"},
	}
	result := FilterStudents(testStudents(), filter)
	if assert.Len(t, result, 1) {
		assert.Equal(t, "Cara", result[0].Name)
	}
}

func TestFilterStudents_NoMatches(t *testing.T) {
	result := FilterStudents(testStudents(), StudentFilter{Grades: []string{"F"}})
	assert.Empty(t, result)
}
