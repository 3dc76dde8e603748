package dynamorepo

import (
	"fmt"
	"strconv"

	"github.com/mrled/suns/roster/internal/model"
)

// partitionKey is the single partition every student item lives in.
// Querying it by sort key returns students in insertion order.
const partitionKey = "student"

// StudentDTO represents the persistence layer DTO for DynamoDB
// It maps the domain model to DynamoDB's key structure where:
// - PK (partition key) is the fixed partitionKey
// - SK (sort key) is a zero-padded insertion sequence number
type StudentDTO struct {
	PK    string `dynamodbav:"pk"`
	SK    string `dynamodbav:"sk"`
	Name  string `dynamodbav:"Name"`
	Roll  string `dynamodbav:"Roll"`
	Grade string `dynamodbav:"Grade"`
	Email string `dynamodbav:"Email"`
}

// formatSeq renders a sequence number so that string order matches numeric order
func formatSeq(seq uint64) string {
	return fmt.Sprintf("%020d", seq)
}

// parseSeq is the inverse of formatSeq
func parseSeq(sk string) (uint64, error) {
	seq, err := strconv.ParseUint(sk, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid sort key %q: %w", sk, err)
	}
	return seq, nil
}

// ToDomain converts a StudentDTO to a domain model Student
func (dto *StudentDTO) ToDomain() model.Student {
	return model.NewStudent(dto.Name, dto.Roll, dto.Grade, dto.Email)
}

// FromDomain creates a StudentDTO from a domain model Student at the given sequence number
func FromDomain(s model.Student, seq uint64) *StudentDTO {
	return &StudentDTO{
		PK:    partitionKey,
		SK:    formatSeq(seq),
		Name:  s.Name,
		Roll:  s.Roll,
		Grade: s.Grade,
		Email: s.Email,
	}
}

// ToDomainList converts a slice of StudentDTOs to domain model Students
func ToDomainList(dtos []*StudentDTO) []model.Student {
	students := make([]model.Student, len(dtos))
	for i, dto := range dtos {
		students[i] = dto.ToDomain()
	}
	return students
}
