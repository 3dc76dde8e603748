package model

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// WriteLines writes one Line per student, each terminated by "\n", in slice order
func WriteLines(w io.Writer, students []Student) error {
	bw := bufio.NewWriter(w)
	for _, s := range students {
		if _, err := bw.WriteString(s.Line()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadLines parses every line of r with ParseLine, skipping lines that do not parse.
// Lines may be of any length and may end in "\n" or "\r\n".
// On a read error the students parsed so far are returned along with the error;
// the incomplete line being read when the error occurred is dropped.
func ReadLines(r io.Reader) ([]Student, error) {
	var students []Student
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return students, err
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if s, ok := ParseLine(line); ok {
			students = append(students, s)
		}

		if err != nil {
			return students, nil
		}
	}
}
