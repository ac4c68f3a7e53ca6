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

// Package logic connects the parser, the model and storage: it turns a
// line of user input into a command result and persists the address book
// after every command.
package logic

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/logic/command"
	"github.com/tanruiquan/tp/abcore/logic/parser"
	"github.com/tanruiquan/tp/abcore/model"
	"github.com/tanruiquan/tp/abcore/model/addressbook"
	"github.com/tanruiquan/tp/abcore/model/person"
	"github.com/tanruiquan/tp/abcore/storage"
)

// MessageFileOpsError is reported when the address book cannot be saved
// after a command.
const MessageFileOpsError = "Could not save data to file: %s"

// Manager executes user input against a model and saves the result.
type Manager struct {
	model   addressbook.Model
	storage storage.AddressBookStorage
	parser  parser.AddressBookParser
	metrics *Metrics
	log     *zap.Logger

	// logPersonalData puts raw input and unmasked person details in logs.
	logPersonalData bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithPersonalDataInLogs controls whether command input and the persons a
// command touched are logged in full. By default persons are logged in
// their redacted form and the raw input is not logged.
func WithPersonalDataInLogs(on bool) Option {
	return func(lm *Manager) { lm.logPersonalData = on }
}

// NewManager returns a Manager. A nil logger disables logging and nil
// metrics are replaced by unregistered collectors.
func NewManager(m addressbook.Model, s storage.AddressBookStorage, metrics *Metrics, log *zap.Logger, opts ...Option) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	if metrics == nil {
		metrics = newUnregisteredMetrics()
	}
	metrics.Persons.Set(float64(len(m.AddressBook().Persons())))
	lm := &Manager{model: m, storage: s, metrics: metrics, log: log}
	for _, opt := range opts {
		opt(lm)
	}
	return lm
}

// Execute parses and runs text, then saves the address book.
//
// Parse and execution failures are returned as they are; their messages
// are meant for the user. A failed save is reported as *errors.CommandError
// carrying MessageFileOpsError, even though the command itself took
// effect.
func (lm *Manager) Execute(ctx context.Context, text string) (command.Result, error) {
	if lm.logPersonalData {
		lm.log.Debug("user input", zap.String("input", text))
	}

	cmd, err := lm.parser.Parse(text)
	if err != nil {
		lm.log.Info("user command", zap.String("command", "unknown"))
		lm.log.Debug("parse failed", zap.Error(err))
		lm.record("unknown", OutcomeParseError)
		return command.Result{}, err
	}

	lm.log.Info("user command", zap.String("command", cmd.Word()))

	res, err := cmd.Execute(lm.model)
	if err != nil {
		lm.log.Debug("command failed", zap.String("word", cmd.Word()), zap.Error(err))
		lm.record(cmd.Word(), OutcomeError)
		return command.Result{}, err
	}

	if err := lm.storage.SaveAddressBook(ctx, lm.model.AddressBook()); err != nil {
		lm.log.Warn("save failed", zap.String("path", lm.storage.AddressBookPath()), zap.Error(err))
		lm.record(cmd.Word(), OutcomeSaveError)
		return command.Result{}, &errors.CommandError{Message: fmt.Sprintf(MessageFileOpsError, rootCause(err))}
	}

	if res.Person != nil {
		lm.log.Info("person updated",
			zap.String("command", cmd.Word()),
			zap.String("person", model.SafeString(res.Person, lm.logPersonalData)))
	}

	lm.record(cmd.Word(), OutcomeOK)
	lm.metrics.Persons.Set(float64(len(lm.model.AddressBook().Persons())))
	return res, nil
}

func (lm *Manager) record(word, outcome string) {
	lm.metrics.Commands.WithLabelValues(word, outcome).Inc()
}

func rootCause(err error) error {
	for {
		next := stderrors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// AddressBook returns a read-only view of the current address book.
func (lm *Manager) AddressBook() addressbook.ReadOnlyAddressBook {
	return lm.model.AddressBook()
}

// FilteredPersons returns the persons currently shown to the user.
func (lm *Manager) FilteredPersons() []*person.Person {
	return lm.model.FilteredPersons()
}

// AddressBookFilePath returns where the address book is saved.
func (lm *Manager) AddressBookFilePath() string {
	return lm.storage.AddressBookPath()
}

// UserPrefs returns the current preferences.
func (lm *Manager) UserPrefs() addressbook.UserPrefs {
	return lm.model.UserPrefs()
}
