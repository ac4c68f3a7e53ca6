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
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model/addressbook"
)

// YAMLUserPrefsStorage keeps user preferences in a YAML file.
type YAMLUserPrefsStorage struct {
	path string
}

var _ UserPrefsStorage = (*YAMLUserPrefsStorage)(nil)

// NewYAMLUserPrefsStorage returns storage for the YAML file at path.
func NewYAMLUserPrefsStorage(path string) *YAMLUserPrefsStorage {
	return &YAMLUserPrefsStorage{path: path}
}

// UserPrefsPath returns the preferences file.
func (s *YAMLUserPrefsStorage) UserPrefsPath() string {
	return s.path
}

// ReadUserPrefs loads the preferences. Fields absent from the file keep
// their default values.
func (s *YAMLUserPrefsStorage) ReadUserPrefs() (addressbook.UserPrefs, bool, error) {
	prefs := addressbook.DefaultUserPrefs()
	data, err := os.ReadFile(s.path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return prefs, false, nil
	}
	if err != nil {
		return prefs, false, &errors.DataLoadingError{Path: s.path, Err: err}
	}
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return addressbook.DefaultUserPrefs(), false, &errors.DataLoadingError{Path: s.path, Err: err}
	}
	if err := prefs.Validate(); err != nil {
		return addressbook.DefaultUserPrefs(), false, &errors.DataLoadingError{Path: s.path, Err: err}
	}
	return prefs, true, nil
}

// SaveUserPrefs validates prefs and writes them atomically.
func (s *YAMLUserPrefsStorage) SaveUserPrefs(prefs addressbook.UserPrefs) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode user prefs: %w", err)
	}
	return writeFileAtomic(s.path, data)
}
