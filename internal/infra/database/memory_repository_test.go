package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mehrsalabs/leadbot/internal/entity"
	"github.com/mehrsalabs/leadbot/internal/infra/database"
)

func TestLoadUnknownIdentityReturnsDefault(t *testing.T) {
	repo := database.NewMemoryLeadStateRepository()

	state, err := repo.Load(context.Background(), "never-seen")

	assert.NoError(t, err)
	assert.Equal(t, "never-seen", state.Identity)
	assert.Equal(t, entity.StepAwaitingLangSelection, state.Step)
	assert.Empty(t, state.Language)
	assert.True(t, state.RegisteredAt.IsZero())
}

func TestSaveMergesOnWrite(t *testing.T) {
	ctx := context.Background()
	repo := database.NewMemoryLeadStateRepository()

	assert.NoError(t, repo.Save(ctx, "id-1", "en", "Alice", "", entity.StepAwaitingPhone))
	assert.NoError(t, repo.Save(ctx, "id-1", "", "", "", entity.StepMainMenu))

	state, err := repo.Load(ctx, "id-1")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", state.Name)
	assert.Equal(t, "en", state.Language)
	assert.Equal(t, entity.StepMainMenu, state.Step)
}

func TestSaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := database.NewMemoryLeadStateRepository()

	assert.NoError(t, repo.Save(ctx, "id-2", "fa", "Bob", "+971", entity.StepMainMenu))
	first, err := repo.Load(ctx, "id-2")
	assert.NoError(t, err)

	assert.NoError(t, repo.Save(ctx, "id-2", "fa", "Bob", "+971", entity.StepMainMenu))
	second, err := repo.Load(ctx, "id-2")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.RegisteredAt, second.RegisteredAt, "registeredAt is stamped once")
}

func TestResetClearsCapturedFields(t *testing.T) {
	ctx := context.Background()
	repo := database.NewMemoryLeadStateRepository()

	assert.NoError(t, repo.Save(ctx, "id-3", "ar", "Carol", "+971", entity.StepMainMenu))
	before, err := repo.Load(ctx, "id-3")
	assert.NoError(t, err)

	assert.NoError(t, repo.Reset(ctx, "id-3"))

	state, err := repo.Load(ctx, "id-3")
	assert.NoError(t, err)
	assert.Equal(t, entity.StepAwaitingLangSelection, state.Step)
	assert.Empty(t, state.Language)
	assert.Empty(t, state.Name)
	assert.Empty(t, state.Phone)
	assert.Equal(t, before.RegisteredAt, state.RegisteredAt, "reset keeps registeredAt")
}

func TestResetCreatesMissingRecord(t *testing.T) {
	ctx := context.Background()
	repo := database.NewMemoryLeadStateRepository()

	assert.NoError(t, repo.Reset(ctx, "id-4"))

	state, err := repo.Load(ctx, "id-4")
	assert.NoError(t, err)
	assert.Equal(t, entity.StepAwaitingLangSelection, state.Step)
	assert.False(t, state.RegisteredAt.IsZero())
}

func TestLoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := database.NewMemoryLeadStateRepository()

	assert.NoError(t, repo.Save(ctx, "id-5", "en", "Dave", "", entity.StepAwaitingPhone))

	state, err := repo.Load(ctx, "id-5")
	assert.NoError(t, err)
	state.Name = "mutated"

	reloaded, err := repo.Load(ctx, "id-5")
	assert.NoError(t, err)
	assert.Equal(t, "Dave", reloaded.Name)
}
