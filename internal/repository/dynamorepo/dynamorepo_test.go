package dynamorepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrled/suns/roster/internal/model"
)

var (
	ann = model.NewStudent("Ann", "R1", "A+", "ann@x.com")
	bob = model.NewStudent("Bob", "R2", "B", "bob@x.com")
)

func TestDynamoRepository_AddFind(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	repo := NewDynamoRepository(fake, "students", false)

	result, err := repo.Add(ctx, ann)
	require.NoError(t, err)
	assert.True(t, result.Persisted())

	got, err := repo.Find(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, ann, got)

	_, err = repo.Find(ctx, "R9")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDynamoRepository_SequenceKeys(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	repo := NewDynamoRepository(fake, "students", false)

	repo.Add(ctx, ann)
	repo.Add(ctx, bob)

	_, first := fake.items[formatSeq(1)]
	_, second := fake.items[formatSeq(2)]
	assert.True(t, first)
	assert.True(t, second)
}

func TestDynamoRepository_AllInsertionOrderAcrossPages(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	fake.PageSize = 2
	repo := NewDynamoRepository(fake, "students", false)

	var want []model.Student
	for _, roll := range []string{"R5", "R3", "R9", "R1", "R7"} {
		s := model.NewStudent("n"+roll, roll, "A", roll+"@x.com")
		_, err := repo.Add(ctx, s)
		require.NoError(t, err)
		want = append(want, s)
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, all)
}

func TestDynamoRepository_RemoveFirstMatch(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	repo := NewDynamoRepository(fake, "students", false)

	second := model.NewStudent("Second", "r1", "B", "second@x.com")
	repo.Add(ctx, ann)
	repo.Add(ctx, bob)
	repo.Add(ctx, second)

	result, err := repo.Remove(ctx, "R1")
	require.NoError(t, err)
	assert.True(t, result.Changed)

	all, _ := repo.All(ctx)
	assert.Equal(t, []model.Student{bob, second}, all)
}

func TestDynamoRepository_RemoveMissingDoesNotDelete(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewDynamoRepository(fake, "students", false)

	result, err := repo.Remove(context.Background(), "R1")
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Zero(t, fake.Deletes)
}

func TestDynamoRepository_AddAfterRemoveKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewDynamoRepository(newFakeDynamo(), "students", false)

	repo.Add(ctx, ann)
	repo.Add(ctx, bob)
	repo.Remove(ctx, "R2")
	carl := model.NewStudent("Carl", "R3", "C", "carl@x.com")
	repo.Add(ctx, carl)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Student{ann, carl}, all)
}

func TestDynamoRepository_RejectDuplicateRolls(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	repo := NewDynamoRepository(fake, "students", true)

	_, err := repo.Add(ctx, ann)
	require.NoError(t, err)

	result, err := repo.Add(ctx, model.NewStudent("Other", "r1", "C", "o@x.com"))
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
	assert.False(t, result.Changed)
	assert.Equal(t, 1, fake.Puts)
}

func TestDynamoRepository_PutFailure(t *testing.T) {
	fake := newFakeDynamo()
	fake.PutErr = errInjected
	repo := NewDynamoRepository(fake, "students", false)

	result, err := repo.Add(context.Background(), ann)
	assert.ErrorIs(t, err, errInjected)
	assert.False(t, result.Changed)
}

func TestDynamoRepository_QueryFailure(t *testing.T) {
	fake := newFakeDynamo()
	fake.QueryErr = errInjected
	repo := NewDynamoRepository(fake, "students", false)

	_, err := repo.All(context.Background())
	assert.ErrorIs(t, err, errInjected)

	_, err = repo.Find(context.Background(), "R1")
	assert.ErrorIs(t, err, errInjected)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}

func TestDynamoRepository_DeleteFailure(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	repo := NewDynamoRepository(fake, "students", false)
	repo.Add(ctx, ann)

	fake.DeleteErr = errInjected
	result, err := repo.Remove(ctx, "R1")
	assert.ErrorIs(t, err, errInjected)
	assert.False(t, result.Changed)
}
