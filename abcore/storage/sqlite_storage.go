/*
   Copyright 2025 The tp Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package storage

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model/addressbook"
)

// DefaultSnapshotHistory is the number of snapshots kept when none is
// configured.
const DefaultSnapshotHistory = 10

// Snapshot describes one saved version of the address book.
type Snapshot struct {
	ID      string
	SavedAt time.Time
}

// SQLiteAddressBookStorage keeps the address book in a SQLite database.
//
// Every save inserts a snapshot row holding the full JSON document and
// prunes all but the newest history rows. Reads return the newest
// snapshot.
type SQLiteAddressBookStorage struct {
	db      *sql.DB
	path    string
	history int
	now     func() time.Time
}

var _ AddressBookStorage = (*SQLiteAddressBookStorage)(nil)

// OpenSQLiteAddressBookStorage opens or creates the database at path. A
// history below one keeps DefaultSnapshotHistory snapshots.
func OpenSQLiteAddressBookStorage(path string, history int) (*SQLiteAddressBookStorage, error) {
	if history < 1 {
		history = DefaultSnapshotHistory
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !stderrors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		saved_at INTEGER NOT NULL,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &SQLiteAddressBookStorage{db: db, path: path, history: history, now: time.Now}, nil
}

// AddressBookPath returns the file the address book is stored in.
func (s *SQLiteAddressBookStorage) AddressBookPath() string {
	return s.path
}

// Close closes the database.
func (s *SQLiteAddressBookStorage) Close() error {
	return s.db.Close()
}

// ReadAddressBook returns the newest snapshot. An empty database reports
// found as false.
func (s *SQLiteAddressBookStorage) ReadAddressBook(ctx context.Context) (*addressbook.AddressBook, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots ORDER BY saved_at DESC, rowid DESC LIMIT 1`).Scan(&payload)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &errors.DataLoadingError{Path: s.path, Err: err}
	}
	ab, err := decodeAddressBook(payload)
	if err != nil {
		return nil, false, &errors.DataLoadingError{Path: s.path, Err: err}
	}
	return ab, true, nil
}

// SaveAddressBook validates ab, stores it as a new snapshot and prunes old
// ones.
func (s *SQLiteAddressBookStorage) SaveAddressBook(ctx context.Context, ab addressbook.ReadOnlyAddressBook) (retErr error) {
	payload, err := encodeAddressBook(ab)
	if err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx, `INSERT INTO snapshots(id, saved_at, payload) VALUES(?, ?, ?)`,
		uuid.NewString(), s.now().UnixNano(), payload); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE rowid NOT IN (
		SELECT rowid FROM snapshots ORDER BY saved_at DESC, rowid DESC LIMIT ?
	)`, s.history); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Snapshots lists the kept snapshots, newest first.
func (s *SQLiteAddressBookStorage) Snapshots(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, saved_at FROM snapshots ORDER BY saved_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("select snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Snapshot
	for rows.Next() {
		var (
			id      string
			savedAt int64
		)
		if err := rows.Scan(&id, &savedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, Snapshot{ID: id, SavedAt: time.Unix(0, savedAt)})
	}
	return out, rows.Err()
}
