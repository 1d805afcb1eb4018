package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditguard/creditguard-client/internal/config"
	"github.com/creditguard/creditguard-client/internal/logger"
)

func newTestStore(t *testing.T) (TokenStore, config.Storage) {
	t.Helper()
	cfg := config.Storage{SessionDBPath: filepath.Join(t.TempDir(), "session.db")}

	s, err := NewSQLiteTokenStore(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	return s, cfg
}

// ── Save / Read ─────────────────────────────────────────────────────────────

func TestSQLiteTokenStore_SaveRead(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok1"))

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok1", got)
}

func TestSQLiteTokenStore_ReadEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Read(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestSQLiteTokenStore_SaveOverwrites(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok1"))
	require.NoError(t, s.Save(ctx, "tok2"))

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok2", got)
}

// ── Clear ───────────────────────────────────────────────────────────────────

func TestSQLiteTokenStore_ClearIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok1"))

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx), "clearing an empty slot must not fail")

	_, err := s.Read(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
}

// ── Durability ──────────────────────────────────────────────────────────────

func TestSQLiteTokenStore_SurvivesReopen(t *testing.T) {
	s, cfg := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "persisted"))
	require.NoError(t, s.(*sqliteTokenStore).Close())

	reopened, err := NewSQLiteTokenStore(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	got, err := reopened.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)
}

// ── Fallback ────────────────────────────────────────────────────────────────

func TestNewTokenStore_FallsBackToMemory(t *testing.T) {
	// A directory path can never become a usable SQLite file.
	cfg := config.Storage{SessionDBPath: t.TempDir()}
	ctx := context.Background()

	s := NewTokenStore(ctx, cfg, logger.Nop())
	require.NotNil(t, s)

	// The fallback store still honours the TokenStore contract.
	require.NoError(t, s.Save(ctx, "mem-tok"))
	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mem-tok", got)

	_, isMemory := s.(*memoryTokenStore)
	assert.True(t, isMemory, "expected memory fallback for unopenable path")
}

// ── SQL error propagation (sqlmock) ─────────────────────────────────────────

func TestSQLiteTokenStore_SaveError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO session").WillReturnError(errors.New("disk I/O error"))

	s := &sqliteTokenStore{db: db, logger: logger.Nop()}
	err = s.Save(context.Background(), "tok")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save session token")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTokenStore_ReadError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value").WillReturnError(errors.New("database is locked"))

	s := &sqliteTokenStore{db: db, logger: logger.Nop()}
	_, err = s.Read(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoToken)
	assert.Contains(t, err.Error(), "read session token")
}

func TestSQLiteTokenStore_ClearError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM session").WillReturnError(errors.New("database is locked"))

	s := &sqliteTokenStore{db: db, logger: logger.Nop()}
	err = s.Clear(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear session token")
}
