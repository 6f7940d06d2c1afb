package database

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/hadir/core"
)

// KVStore persists string values in the kv_store table.
type KVStore struct {
	db *sqlx.DB
}

var _ core.StorageProvider = (*KVStore)(nil)

func NewKVStore(db *sqlx.DB) *KVStore {
	return &KVStore{db: db}
}

type kvRow struct {
	Key       string      `db:"key"`
	Value     null.String `db:"value"`
	UpdatedAt time.Time   `db:"updated_at"`
}

func (s *KVStore) Get(key string) (string, bool, error) {
	var row kvRow
	q := s.db.Rebind("SELECT key, value, updated_at FROM kv_store WHERE key = ?")
	if err := s.db.Get(&row, q, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "reading %q", key)
	}
	if !row.Value.Valid { // cleared
		return "", false, nil
	}
	return row.Value.String, true, nil
}

func (s *KVStore) Set(key, value string) error {
	q := s.db.Rebind(`
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if _, err := s.db.Exec(q, key, null.StringFrom(value), time.Now().UTC()); err != nil {
		return errors.Wrapf(err, "writing %q", key)
	}
	return nil
}

// Delete clears the value under key. The row stays behind with a NULL value
// and reads as not found.
func (s *KVStore) Delete(key string) error {
	q := s.db.Rebind("UPDATE kv_store SET value = ?, updated_at = ? WHERE key = ?")
	if _, err := s.db.Exec(q, null.String{}, time.Now().UTC(), key); err != nil {
		return errors.Wrapf(err, "deleting %q", key)
	}
	return nil
}

// DB returns the underlying connection.
func (s *KVStore) DB() *sqlx.DB { return s.db }
