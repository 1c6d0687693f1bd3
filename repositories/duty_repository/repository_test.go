package duty_repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *Repository {
	t.Helper()

	repo, err := NewRepository(context.Background(), ":memory:")
	require.NoError(t, err, "failed to open test repository")

	return repo
}

func TestUnit_ReplaceDuties_FullReplace_Ok(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	err := repo.ReplaceDuties(ctx, []Duty{
		{DutyDate: "2024-02-01", Name: "Alice"},
		{DutyDate: "2024-02-01", Name: "Bob"},
		{DutyDate: "2024-02-02", Name: "Carol"},
	})
	require.NoError(t, err)

	err = repo.ReplaceDuties(ctx, []Duty{{DutyDate: "2024-03-05", Name: "Dave"}})
	require.NoError(t, err)

	duties, err := repo.AllDuties(ctx)
	require.NoError(t, err)
	require.Len(t, duties, 1)
	assert.Equal(t, "2024-03-05", duties[0].DutyDate)
	assert.Equal(t, "Dave", duties[0].Name)
}

func TestUnit_NamesForDate_DuplicatesKept_Ok(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	err := repo.ReplaceDuties(ctx, []Duty{
		{DutyDate: "2024-02-01", Name: "Alice"},
		{DutyDate: "2024-02-01", Name: "Bob"},
		{DutyDate: "2024-02-02", Name: "Carol"},
	})
	require.NoError(t, err)

	names, err := repo.NamesForDate(ctx, "2024-02-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, names)

	names, err = repo.NamesForDate(ctx, "2024-02-03")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestUnit_ClearDuties_Ok(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	err := repo.ReplaceDuties(ctx, []Duty{
		{DutyDate: "2024-02-01", Name: "Alice"},
		{DutyDate: "2024-02-02", Name: "Bob"},
	})
	require.NoError(t, err)

	deleted, err := repo.ClearDuties(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	duties, err := repo.AllDuties(ctx)
	require.NoError(t, err)
	assert.Empty(t, duties)
}

func TestUnit_Recipients_SetSemantics_Ok(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	require.NoError(t, repo.AddRecipient(ctx, 100))
	require.NoError(t, repo.AddRecipient(ctx, 100))
	require.NoError(t, repo.AddRecipient(ctx, 200))

	chatIDs, err := repo.ListRecipients(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 200}, chatIDs)

	removed, err := repo.RemoveRecipient(ctx, 100)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.RemoveRecipient(ctx, 100)
	require.NoError(t, err)
	assert.False(t, removed)

	chatIDs, err = repo.ListRecipients(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{200}, chatIDs)
}

func TestUnit_Config_GetSet_Ok(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	_, ok, err := repo.GetConfig(ctx, "send_time")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetConfig(ctx, "send_time", "09:00"))
	require.NoError(t, repo.SetConfig(ctx, "send_time", "10:30"))

	value, ok, err := repo.GetConfig(ctx, "send_time")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "10:30", value)
}
