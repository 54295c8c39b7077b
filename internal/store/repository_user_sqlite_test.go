package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/werlleyg/boilerplate-api/internal/config"
	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/models"
)

// recordingObserver keeps every reported operation.
type recordingObserver struct {
	ops     []string
	classes []string
}

func (o *recordingObserver) ObserveQuery(op, class string, _ time.Duration) {
	o.ops = append(o.ops, op)
	o.classes = append(o.classes, class)
}

func newSQLiteRepo(t *testing.T, observer QueryObserver) UserRepository {
	t.Helper()

	ctx := context.Background()
	cfg := config.DB{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}

	db, err := Connect(ctx, cfg, observer, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))
	require.NoError(t, db.Ping(ctx))

	return NewStorages(db, logger.Nop()).UserRepository
}

func newUser(email string) models.User {
	return models.User{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Name:         "Someone",
		Email:        email,
		PasswordHash: "hash",
		Role:         models.RoleGuest,
	}
}

func TestSQLite_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t, nil)

	created, err := repo.Create(ctx, newUser("ann@example.com"))
	require.NoError(t, err)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", byID.Email)
	assert.Equal(t, models.RoleGuest, byID.Role)
	assert.Equal(t, "hash", byID.PasswordHash)
	assert.WithinDuration(t, created.CreatedAt, byID.CreatedAt, time.Second)

	byEmail, err := repo.FindByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID.Name = "Annie"
	byID.Role = models.RoleAdmin
	updated, err := repo.Update(ctx, byID)
	require.NoError(t, err)
	assert.Equal(t, "Annie", updated.Name)

	reloaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Annie", reloaded.Name)
	assert.Equal(t, models.RoleAdmin, reloaded.Role)
	assert.Equal(t, "hash", reloaded.PasswordHash)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLite_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t, nil)

	_, err := repo.Create(ctx, newUser("dup@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newUser("dup@example.com"))
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)

	other, err := repo.Create(ctx, newUser("other@example.com"))
	require.NoError(t, err)

	other.Email = "dup@example.com"
	_, err = repo.Update(ctx, other)
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestSQLite_UpdateMissing(t *testing.T) {
	repo := newSQLiteRepo(t, nil)

	_, err := repo.Update(context.Background(), newUser("ghost@example.com"))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLite_ListOrdered(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t, nil)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NotNil(t, users)

	first, err := repo.Create(ctx, newUser("first@example.com"))
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := repo.Create(ctx, newUser("second@example.com"))
	require.NoError(t, err)

	users, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.ID, users[0].ID)
	assert.Equal(t, second.ID, users[1].ID)
}

func TestSQLite_ObserverReceivesOutcomes(t *testing.T) {
	ctx := context.Background()
	obs := &recordingObserver{}
	repo := newSQLiteRepo(t, obs)

	_, err := repo.Create(ctx, newUser("obs@example.com"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newUser("obs@example.com"))
	require.Error(t, err)
	_, err = repo.FindByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, ErrUserNotFound)

	assert.Equal(t, []string{"users.create", "users.create", "users.find_by_email"}, obs.ops)
	assert.Equal(t, []string{"", ClassUniqueViolation, ""}, obs.classes)
}
