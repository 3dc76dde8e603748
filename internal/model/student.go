package model

import (
	"fmt"
	"strings"
)

// Student represents one roster entry.
// Students are passed and stored by value; there is no update operation.
type Student struct {
	Name  string
	Roll  string
	Grade string
	Email string
}

// NewStudent creates a Student from its four fields, in file order
func NewStudent(name, roll, grade, email string) Student {
	return Student{
		Name:  name,
		Roll:  roll,
		Grade: grade,
		Email: email,
	}
}

// String renders the student for display
func (s Student) String() string {
	return fmt.Sprintf("Name: %s, Roll: %s, Grade: %s, Email: %s", s.Name, s.Roll, s.Grade, s.Email)
}

// Line serializes the student as one backing-file line, without a line terminator.
// Fields are not escaped, so a field containing a comma will not parse back.
func (s Student) Line() string {
	return strings.Join([]string{s.Name, s.Roll, s.Grade, s.Email}, ",")
}

// ParseLine parses a backing-file line.
// Trailing empty fields are dropped before counting, so "a,b,c,d," parses
// and "a,b,c," does not. Any line that does not yield exactly four fields
// returns false.
func ParseLine(line string) (Student, bool) {
	parts := strings.Split(line, ",")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) != 4 {
		return Student{}, false
	}
	return NewStudent(parts[0], parts[1], parts[2], parts[3]), true
}

// MatchesRoll reports whether roll equals the student's roll, ignoring case
func (s Student) MatchesRoll(roll string) bool {
	return strings.EqualFold(s.Roll, roll)
}

// Validate checks that every field is present.
// The returned error wraps ErrMissingField and names the first empty field.
func (s Student) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", s.Name},
		{"roll", s.Roll},
		{"grade", s.Grade},
		{"email", s.Email},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}
