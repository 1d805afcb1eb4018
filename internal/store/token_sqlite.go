package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/creditguard/creditguard-client/internal/config"
	"github.com/creditguard/creditguard-client/internal/logger"
	"github.com/creditguard/creditguard-client/migrations"
)

type sqliteTokenStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteTokenStore opens (creating if necessary) the SQLite session
// database at cfg.SessionDBPath, applies pending schema migrations, and
// returns a [TokenStore] backed by it.
//
// Returns an error if the file cannot be created, the connection cannot be
// established, or migration fails. Callers that want the memory fallback
// behaviour should construct through [NewTokenStore] instead.
func NewSQLiteTokenStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (TokenStore, error) {
	if err := createLocalDBFileIfNotExists(cfg.SessionDBPath); err != nil {
		log.Err(err).Str("func", "NewSQLiteTokenStore").Msg("error creating session database file")
		return nil, fmt.Errorf("error creating session database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.SessionDBPath)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteTokenStore").Msg("error opening session database")
		return nil, fmt.Errorf("error opening connection to session DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteTokenStore").Msg("error connecting session database (ping)")
		_ = conn.Close()
		return nil, err
	}

	if err = migrations.Migrate(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("session schema migration failed: %w", err)
	}
	log.Debug().Str("func", "NewSQLiteTokenStore").Msg("connected to session database successfully")

	return &sqliteTokenStore{db: conn, logger: log}, nil
}

// NewTokenStore constructs the client's token store. It prefers the durable
// SQLite backend; if the database cannot be opened the failure is logged and
// a memory-only store is returned instead, so the client keeps working with a
// session that lasts only for the process lifetime.
func NewTokenStore(ctx context.Context, cfg config.Storage, log *logger.Logger) TokenStore {
	s, err := NewSQLiteTokenStore(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("session storage unavailable, falling back to memory-only session")
		return NewMemoryTokenStore()
	}
	return s
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

// Save implements [TokenStore]. It upserts token into the single session
// slot.
func (s *sqliteTokenStore) Save(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, saveToken, token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

// Read implements [TokenStore]. It returns [ErrNoToken] when the slot is
// empty.
func (s *sqliteTokenStore) Read(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, readToken).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}
	return token, nil
}

// Clear implements [TokenStore]. Deleting an already empty slot is a no-op.
func (s *sqliteTokenStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, clearToken); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

// Close releases the underlying database connection.
func (s *sqliteTokenStore) Close() error {
	return s.db.Close()
}
