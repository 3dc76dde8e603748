package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentString(t *testing.T) {
	s := NewStudent("Ann", "R1", "A+", "ann@x.com")
	assert.Equal(t, "Name: Ann, Roll: R1, Grade: A+, Email: ann@x.com", s.String())
}

func TestStudentLine(t *testing.T) {
	s := NewStudent("Ann", "R1", "A+", "ann@x.com")
	assert.Equal(t, "Ann,R1,A+,ann@x.com", s.Line())
}

func TestParseLine_RoundTrip(t *testing.T) {
	students := []Student{
		NewStudent("Ann", "R1", "A+", "ann@x.com"),
		NewStudent("Bob Smith", "2024-17", "B", "bob.smith@school.edu"),
		NewStudent("  padded ", " r ", " c ", " e "),
	}

	for _, s := range students {
		got, ok := ParseLine(s.Line())
		require.True(t, ok, "line %q should parse", s.Line())
		assert.Equal(t, s, got)
	}
}

func TestParseLine_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"two fields", "Ann,R1"},
		{"three fields", "Ann,R1,A+"},
		{"five fields", "Ann,R1,A+,ann@x.com,extra"},
		{"comma in name", "Smith, Ann,R1,A+,ann@x.com"},
		{"trailing empty makes three", "Ann,R1,A+,"},
		{"only commas", ",,,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseLine(tt.line)
			assert.False(t, ok)
		})
	}
}

func TestParseLine_TrailingEmptyFieldsDropped(t *testing.T) {
	s, ok := ParseLine("Ann,R1,A+,ann@x.com,,")
	require.True(t, ok)
	assert.Equal(t, NewStudent("Ann", "R1", "A+", "ann@x.com"), s)
}

func TestParseLine_InnerEmptyFieldKept(t *testing.T) {
	s, ok := ParseLine("Ann,,A+,ann@x.com")
	require.True(t, ok)
	assert.Equal(t, "", s.Roll)
	assert.Equal(t, "ann@x.com", s.Email)
}

func TestMatchesRoll(t *testing.T) {
	s := NewStudent("Ann", "R1", "A+", "ann@x.com")
	assert.True(t, s.MatchesRoll("R1"))
	assert.True(t, s.MatchesRoll("r1"))
	assert.False(t, s.MatchesRoll("R10"))
	assert.False(t, s.MatchesRoll(""))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, NewStudent("Ann", "R1", "A+", "ann@x.com").Validate())

	err := NewStudent("Ann", "R1", "", "ann@x.com").Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Contains(t, err.Error(), "grade")

	err = NewStudent("", "", "", "").Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestWriteResultPersisted(t *testing.T) {
	assert.True(t, WriteResult{Changed: true}.Persisted())
	assert.False(t, WriteResult{}.Persisted())
	assert.False(t, WriteResult{Changed: true, PersistErr: errors.New("disk full")}.Persisted())
}
