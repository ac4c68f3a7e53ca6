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
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model"
	"github.com/tanruiquan/tp/abcore/model/addressbook"
)

// JSONAddressBookStorage keeps the address book in a JSON file.
type JSONAddressBookStorage struct {
	path string
}

var _ AddressBookStorage = (*JSONAddressBookStorage)(nil)

// NewJSONAddressBookStorage returns storage for the JSON file at path.
func NewJSONAddressBookStorage(path string) *JSONAddressBookStorage {
	return &JSONAddressBookStorage{path: path}
}

// AddressBookPath returns the file the address book is stored in.
func (s *JSONAddressBookStorage) AddressBookPath() string {
	return s.path
}

// ReadAddressBook reads the file. A missing file reports found as false;
// unreadable content returns *errors.DataLoadingError.
func (s *JSONAddressBookStorage) ReadAddressBook(_ context.Context) (*addressbook.AddressBook, bool, error) {
	data, err := os.ReadFile(s.path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &errors.DataLoadingError{Path: s.path, Err: err}
	}
	ab, err := decodeAddressBook(data)
	if err != nil {
		return nil, false, &errors.DataLoadingError{Path: s.path, Err: err}
	}
	return ab, true, nil
}

// SaveAddressBook validates ab and replaces the file atomically.
func (s *JSONAddressBookStorage) SaveAddressBook(_ context.Context, ab addressbook.ReadOnlyAddressBook) error {
	data, err := encodeAddressBook(ab)
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path, data)
}

// encodeAddressBook renders ab as indented JSON. Every person is validated
// first and all failures are reported together; nothing is encoded unless
// the whole book is valid.
func encodeAddressBook(ab addressbook.ReadOnlyAddressBook) ([]byte, error) {
	if err := model.ValidateAll(ab.Persons()); err != nil {
		return nil, fmt.Errorf("refusing to save invalid address book: %w", err)
	}
	data, err := json.MarshalIndent(FromAddressBook(ab), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode address book: %w", err)
	}
	return append(data, '\n'), nil
}

func decodeAddressBook(data []byte) (*addressbook.AddressBook, error) {
	var doc JSONSerializableAddressBook
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.ToModelType()
}

// writeFileAtomic replaces path with data, creating parent directories as
// needed. Readers see either the old or the new content.
func writeFileAtomic(path string, data []byte) (retErr error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create dirs: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
