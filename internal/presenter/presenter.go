// Package presenter turns roster results into the text shown to users
package presenter

import (
	"fmt"
	"strings"

	"github.com/mrled/suns/roster/internal/model"
)

const (
	MsgAllFieldsRequired = "All fields are required!"
	MsgAdded             = "Student added successfully!"
	MsgEnterRollSearch   = "Enter roll number to search!"
	MsgEnterRollRemove   = "Enter roll number to remove!"
	MsgNoStudents        = "No students found."
	MsgNotRemoved        = "Student not found."
)

// Found describes a successful lookup
func Found(s model.Student) string {
	return "Student Found:\n" + s.String()
}

// NotFound describes a lookup with no match
func NotFound(roll string) string {
	return fmt.Sprintf("Student with roll %s not found.", roll)
}

// Removed describes a successful removal
func Removed(roll string) string {
	return fmt.Sprintf("Student with roll %s removed successfully.", roll)
}

// Listing renders one student per line, or MsgNoStudents for an empty roster
func Listing(students []model.Student) string {
	if len(students) == 0 {
		return MsgNoStudents
	}

	var sb strings.Builder
	for _, s := range students {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Table renders students as a fixed-width table
func Table(students []model.Student) string {
	if len(students) == 0 {
		return MsgNoStudents
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-25s %-12s %-6s %s\n", "Name", "Roll", "Grade", "Email")
	sb.WriteString(strings.Repeat("-", 80))
	sb.WriteString("\n")

	for _, s := range students {
		fmt.Fprintf(&sb, "%-25s %-12s %-6s %s\n",
			truncateString(s.Name, 25),
			truncateString(s.Roll, 12),
			truncateString(s.Grade, 6),
			truncateString(s.Email, 34))
	}
	return sb.String()
}

// PersistWarning describes a change that was applied but not saved
func PersistWarning(err error) string {
	return fmt.Sprintf("Warning: change applied but not saved: %v", err)
}

// truncateString truncates a string to at most maxLen runes, ending in an ellipsis
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
