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

package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/tanruiquan/tp/abcore/config"
	"github.com/tanruiquan/tp/abcore/logic"
	"github.com/tanruiquan/tp/abcore/model/addressbook"
	"github.com/tanruiquan/tp/abcore/storage"
)

// app is the wired application: storage, model and logic.
type app struct {
	logger   *zap.Logger
	storage  *storage.Manager
	model    *addressbook.Manager
	logic    *logic.Manager
	registry *prometheus.Registry
	closeDB  func() error
}

// bootstrap loads preferences and the address book and wires the logic
// manager on top of them. Person details are logged unmasked only at debug
// level.
func bootstrap(ctx context.Context, cfg *config.Config, logger *zap.Logger, verbose bool) (*app, error) {
	prefsStore := storage.NewYAMLUserPrefsStorage(cfg.UserPrefsFilePath)
	prefs := loadUserPrefs(prefsStore, logger)

	abStore, closeDB, err := openAddressBookStorage(cfg.Storage, prefs)
	if err != nil {
		return nil, err
	}
	store := storage.NewManager(abStore, prefsStore, logger)

	ab := loadAddressBook(ctx, store, logger)
	model, err := addressbook.NewManager(ab, prefs)
	if err != nil {
		_ = closeDB()
		return nil, fmt.Errorf("init model: %w", err)
	}

	reg := prometheus.NewRegistry()
	metrics, err := logic.NewMetrics(reg)
	if err != nil {
		_ = closeDB()
		return nil, err
	}

	logger.Info("address book ready",
		zap.String("backend", cfg.Storage.Backend.String()),
		zap.String("path", store.AddressBookPath()),
		zap.Int("persons", ab.Len()))

	return &app{
		logger:  logger,
		storage: store,
		model:   model,
		logic: logic.NewManager(model, store, metrics, logger,
			logic.WithPersonalDataInLogs(verbose || cfg.Logging.Level == "debug")),
		registry: reg,
		closeDB:  closeDB,
	}, nil
}

// loadUserPrefs reads the preferences file, falling back to defaults. A
// missing file is created with the defaults.
func loadUserPrefs(s *storage.YAMLUserPrefsStorage, logger *zap.Logger) addressbook.UserPrefs {
	prefs, found, err := s.ReadUserPrefs()
	switch {
	case err != nil:
		logger.Warn("user prefs unreadable, using defaults", zap.String("path", s.UserPrefsPath()), zap.Error(err))
	case !found:
		logger.Info("creating user prefs file", zap.String("path", s.UserPrefsPath()))
		if err := s.SaveUserPrefs(prefs); err != nil {
			logger.Warn("failed to save user prefs", zap.Error(err))
		}
	}
	return prefs
}

func openAddressBookStorage(cfg config.StorageConfig, prefs addressbook.UserPrefs) (storage.AddressBookStorage, func() error, error) {
	switch cfg.Backend {
	case config.SQLite:
		s, err := storage.OpenSQLiteAddressBookStorage(cfg.SQLitePath, cfg.History)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return storage.NewJSONAddressBookStorage(prefs.AddressBookFilePath), func() error { return nil }, nil
	}
}

// loadAddressBook returns the stored address book. A missing data file
// yields the sample address book and an unreadable one an empty book.
func loadAddressBook(ctx context.Context, s storage.AddressBookStorage, logger *zap.Logger) *addressbook.AddressBook {
	ab, found, err := s.ReadAddressBook(ctx)
	if err != nil {
		logger.Warn("data file could not be loaded, starting with an empty address book",
			zap.String("path", s.AddressBookPath()), zap.Error(err))
		return addressbook.New()
	}
	if !found {
		logger.Info("data file not found, starting with a sample address book", zap.String("path", s.AddressBookPath()))
		sample, err := addressbook.SampleAddressBook()
		if err != nil {
			logger.Warn("sample data invalid", zap.Error(err))
			return addressbook.New()
		}
		return sample
	}
	return ab
}

// close saves the user preferences and releases the storage backend.
func (a *app) close() error {
	if err := a.storage.SaveUserPrefs(a.model.UserPrefs()); err != nil {
		a.logger.Warn("failed to save user prefs", zap.Error(err))
	}
	return a.closeDB()
}
