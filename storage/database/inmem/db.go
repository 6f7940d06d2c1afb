package inmemdb

import (
	"sync"

	"github.com/trezcool/hadir/core"
)

// DB is an in-process key-value table.
// A positive quota caps the summed size of keys and values, like a browser's local storage.
type DB struct {
	sync.RWMutex
	table map[string]string
	quota int
}

var _ core.StorageProvider = (*DB)(nil) // interface compliance check

func Open(quota ...int) *DB {
	db := &DB{table: make(map[string]string)}
	if len(quota) > 0 {
		db.quota = quota[0]
	}
	return db
}

func (db *DB) Get(key string) (string, bool, error) {
	db.RLock()
	defer db.RUnlock()

	val, ok := db.table[key]
	return val, ok, nil
}

func (db *DB) Set(key, value string) error {
	db.Lock()
	defer db.Unlock()

	if db.quota > 0 {
		size := len(key) + len(value)
		for k, v := range db.table {
			if k != key {
				size += len(k) + len(v)
			}
		}
		if size > db.quota {
			return core.ErrQuotaExceeded
		}
	}
	db.table[key] = value
	return nil
}

func (db *DB) Delete(key string) error {
	db.Lock()
	defer db.Unlock()
	delete(db.table, key)
	return nil
}

// Len returns the number of stored keys.
func (db *DB) Len() int {
	db.RLock()
	defer db.RUnlock()
	return len(db.table)
}
