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

package logic_test

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/logic"
	"github.com/tanruiquan/tp/abcore/logic/command"
	"github.com/tanruiquan/tp/abcore/model/addressbook"
	"github.com/tanruiquan/tp/abcore/model/person"
	"github.com/tanruiquan/tp/abcore/storage"
	"github.com/tanruiquan/tp/abcore/testutil"
)

type failingStorage struct {
	path string
}

func (s failingStorage) AddressBookPath() string { return s.path }

func (s failingStorage) ReadAddressBook(context.Context) (*addressbook.AddressBook, bool, error) {
	return nil, false, nil
}

func (s failingStorage) SaveAddressBook(context.Context, addressbook.ReadOnlyAddressBook) error {
	return fmt.Errorf("save address book: %w", stderrors.New("disk full"))
}

type fixture struct {
	model   *addressbook.Manager
	store   *storage.JSONAddressBookStorage
	reg     *prometheus.Registry
	metrics *logic.Metrics
	logic   *logic.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ab := addressbook.New()
	require.NoError(t, ab.SetPersons(testutil.TypicalPersons()))
	m, err := addressbook.NewManager(ab, addressbook.DefaultUserPrefs())
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	metrics, err := logic.NewMetrics(reg)
	require.NoError(t, err)

	store := storage.NewJSONAddressBookStorage(filepath.Join(t.TempDir(), "data", "addressbook.json"))
	return &fixture{
		model:   m,
		store:   store,
		reg:     reg,
		metrics: metrics,
		logic:   logic.NewManager(m, store, metrics, zap.NewNop()),
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	f := newFixture(t)

	_, err := f.logic.Execute(context.Background(), "uicfhmowqewca")
	require.Error(t, err)
	assert.Equal(t, command.MessageUnknownCommand, err.Error())
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.Commands.WithLabelValues("unknown", logic.OutcomeParseError)))
}

func TestExecute_InvalidIndex(t *testing.T) {
	f := newFixture(t)

	_, err := f.logic.Execute(context.Background(), "delete 9")
	var ce *errors.CommandError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, command.MessageInvalidPersonDisplayedIndex, ce.Message)
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.Commands.WithLabelValues(command.DeleteWord, logic.OutcomeError)))

	_, found, err := f.store.ReadAddressBook(context.Background())
	require.NoError(t, err)
	assert.False(t, found, "failed commands must not save")
}

func TestExecute_FindFiltersAndSaves(t *testing.T) {
	f := newFixture(t)

	res, err := f.logic.Execute(context.Background(), "find n/Kurz Elle Kunz")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(command.MessagePersonsListedOverview, 3), res.Feedback)
	assert.Equal(t, []string{"Carl Kurz", "Elle Meyer", "Fiona Kunz"}, names(f.logic))

	saved, found, err := f.store.ReadAddressBook(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, saved.Equal(mustAddressBook(t, f.logic.AddressBook())))
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.Commands.WithLabelValues(command.FindWord, logic.OutcomeOK)))
}

func TestExecute_AddUpdatesGauge(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, float64(len(testutil.TypicalPersons())), promtest.ToFloat64(f.metrics.Persons))

	_, err := f.logic.Execute(context.Background(),
		"add n/Amy Bee p/11111111 e/amy@example.com h/@amybee m/CS2103T t/friend")
	require.NoError(t, err)
	assert.Equal(t, float64(len(testutil.TypicalPersons())+1), promtest.ToFloat64(f.metrics.Persons))

	_, err = f.logic.Execute(context.Background(), "clear")
	require.NoError(t, err)
	assert.Equal(t, 0.0, promtest.ToFloat64(f.metrics.Persons))
}

func TestExecute_SaveFailure(t *testing.T) {
	ab := addressbook.New()
	m, err := addressbook.NewManager(ab, addressbook.DefaultUserPrefs())
	require.NoError(t, err)
	metrics, err := logic.NewMetrics(nil)
	require.NoError(t, err)
	lm := logic.NewManager(m, failingStorage{path: "unused.json"}, metrics, nil)

	_, err = lm.Execute(context.Background(), "list")
	var ce *errors.CommandError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Could not save data to file: disk full", ce.Message)
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.Commands.WithLabelValues(command.ListWord, logic.OutcomeSaveError)))
}

const addAmy = "add n/Amy Bee p/11111111 e/amy@example.com h/@amybee m/CS2103T t/friend"

func amy() *person.Person {
	return testutil.NewPersonBuilder().WithName("Amy Bee").WithPhone("11111111").
		WithEmail("amy@example.com").WithTeleHandle("@amybee").WithRemark("").
		WithModuleCodes("CS2103T").WithTags("friend").Build()
}

func TestExecute_LogsRedactedPerson(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m, err := addressbook.NewManager(addressbook.New(), addressbook.DefaultUserPrefs())
	require.NoError(t, err)
	store := storage.NewJSONAddressBookStorage(filepath.Join(t.TempDir(), "addressbook.json"))
	lm := logic.NewManager(m, store, nil, zap.New(core))

	res, err := lm.Execute(context.Background(), addAmy)
	require.NoError(t, err)
	require.NotNil(t, res.Person)

	for _, entry := range logs.All() {
		for _, v := range entry.ContextMap() {
			s, _ := v.(string)
			assert.NotContains(t, s, "amy@example.com", "entry %q", entry.Message)
			assert.NotContains(t, s, "11111111", "entry %q", entry.Message)
		}
	}
	updated := logs.FilterMessage("person updated").All()
	require.Len(t, updated, 1)
	assert.Equal(t, amy().Redacted(), updated[0].ContextMap()["person"])
	assert.Equal(t, command.AddWord, updated[0].ContextMap()["command"])
	assert.Zero(t, logs.FilterMessage("user input").Len())
}

func TestExecute_LogsPersonalDataWhenEnabled(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m, err := addressbook.NewManager(addressbook.New(), addressbook.DefaultUserPrefs())
	require.NoError(t, err)
	store := storage.NewJSONAddressBookStorage(filepath.Join(t.TempDir(), "addressbook.json"))
	lm := logic.NewManager(m, store, nil, zap.New(core), logic.WithPersonalDataInLogs(true))

	_, err = lm.Execute(context.Background(), addAmy)
	require.NoError(t, err)

	input := logs.FilterMessage("user input").All()
	require.Len(t, input, 1)
	assert.Equal(t, addAmy, input[0].ContextMap()["input"])
	updated := logs.FilterMessage("person updated").All()
	require.Len(t, updated, 1)
	assert.Equal(t, amy().String(), updated[0].ContextMap()["person"])
}

func TestNewManager_NilMetrics(t *testing.T) {
	m, err := addressbook.NewManager(addressbook.New(), addressbook.DefaultUserPrefs())
	require.NoError(t, err)
	store := storage.NewJSONAddressBookStorage(filepath.Join(t.TempDir(), "addressbook.json"))
	lm := logic.NewManager(m, store, nil, nil)

	res, err := lm.Execute(context.Background(), "list")
	require.NoError(t, err)
	assert.Equal(t, command.MessageListSuccess, res.Feedback)
}

func TestManager_Accessors(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, f.store.AddressBookPath(), f.logic.AddressBookFilePath())
	assert.Equal(t, addressbook.DefaultUserPrefs(), f.logic.UserPrefs())
	assert.Len(t, f.logic.FilteredPersons(), len(testutil.TypicalPersons()))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := logic.NewMetrics(reg)
	require.NoError(t, err)

	_, err = logic.NewMetrics(reg)
	assert.Error(t, err)
}

func TestWriteStats(t *testing.T) {
	f := newFixture(t)
	for _, line := range []string{"list", "find n/Alice", "find n/Bob", "bogus"} {
		_, _ = f.logic.Execute(context.Background(), line)
	}

	var buf bytes.Buffer
	require.NoError(t, logic.WriteStats(&buf, f.reg))

	want := `addressbook_commands_total{command="find",outcome="ok"} 2
addressbook_commands_total{command="list",outcome="ok"} 1
addressbook_commands_total{command="unknown",outcome="parse_error"} 1
addressbook_persons 7
`
	assert.Equal(t, want, buf.String())
}

func names(lm *logic.Manager) []string {
	var out []string
	for _, p := range lm.FilteredPersons() {
		out = append(out, p.Name().String())
	}
	return out
}

func mustAddressBook(t *testing.T, src addressbook.ReadOnlyAddressBook) *addressbook.AddressBook {
	t.Helper()
	ab, err := addressbook.FromReadOnly(src)
	require.NoError(t, err)
	return ab
}
