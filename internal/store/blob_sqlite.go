package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/akimenko/securevault/internal/logger"
	"github.com/akimenko/securevault/migrations"
)

// sqliteBlobStore keeps every blob in a single key/value table inside a
// local SQLite database file. Queries are built with squirrel.
type sqliteBlobStore struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewSQLiteBlobStore opens (creating if necessary) the SQLite database at
// dsn, runs pending schema migrations, and returns a BlobStore backed by it.
func NewSQLiteBlobStore(ctx context.Context, dsn string, log *logger.Logger) (BlobStore, error) {
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewSQLiteBlobStore").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteBlobStore").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteBlobStore").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewSQLiteBlobStore").Msg("connected to database successfully")

	if err = migrations.Migrate(conn); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &sqliteBlobStore{
		db:      conn,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

func (s *sqliteBlobStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := s.builder.
		Select("value").
		From("blobs").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: build select: %w", ErrStorageUnavailable, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrBlobNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteBlobStore.Get").
			Str("key", key).
			Msg("failed to read blob")
		return "", fmt.Errorf("%w: read blob %q: %w", ErrStorageUnavailable, key, err)
	}

	return value, nil
}

func (s *sqliteBlobStore) Set(ctx context.Context, key string, value string) error {
	query, args, err := s.builder.
		Insert("blobs").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build upsert: %w", ErrStorageUnavailable, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteBlobStore.Set").
			Str("key", key).
			Msg("failed to write blob")
		return fmt.Errorf("%w: write blob %q: %w", ErrStorageUnavailable, key, err)
	}

	return nil
}

func (s *sqliteBlobStore) Delete(ctx context.Context, key string) error {
	return s.DeleteMulti(ctx, key)
}

func (s *sqliteBlobStore) DeleteMulti(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := s.builder.
		Delete("blobs").
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build delete: %w", ErrStorageUnavailable, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteBlobStore.DeleteMulti").
			Strs("keys", keys).
			Msg("failed to delete blobs")
		return fmt.Errorf("%w: delete blobs: %w", ErrStorageUnavailable, err)
	}

	return nil
}

// Close releases the underlying database handle.
func (s *sqliteBlobStore) Close() error {
	return s.db.Close()
}
