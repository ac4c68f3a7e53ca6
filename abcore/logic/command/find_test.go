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

package command_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/logic/command"
	"github.com/tanruiquan/tp/abcore/model/addressbook"
	"github.com/tanruiquan/tp/abcore/model/person"
	"github.com/tanruiquan/tp/abcore/testutil"
)

func newModel(t *testing.T, persons ...*person.Person) *addressbook.Manager {
	t.Helper()
	ab := addressbook.New()
	require.NoError(t, ab.SetPersons(persons))
	m, err := addressbook.NewManager(ab, addressbook.DefaultUserPrefs())
	require.NoError(t, err)
	return m
}

func typicalModel(t *testing.T) *addressbook.Manager {
	return newModel(t, testutil.TypicalPersons()...)
}

func TestFindCommand_Equal(t *testing.T) {
	first := command.NewFindCommand(person.NewNameContainsKeywordsPredicate([]string{"first"}))
	second := command.NewFindCommand(person.NewNameContainsKeywordsPredicate([]string{"second"}))

	assert.True(t, first.Equal(first))
	assert.True(t, first.Equal(command.NewFindCommand(person.NewNameContainsKeywordsPredicate([]string{"first"}))))
	assert.False(t, first.Equal(second))
	assert.False(t, first.Equal(command.ListCommand{}))
	assert.False(t, first.Equal(nil))
}

func TestFindCommand_Execute(t *testing.T) {
	tests := []struct {
		name string
		pred person.Predicate
		want []*person.Person
	}{
		{
			name: "zero keywords",
			pred: person.NewNameContainsKeywordsPredicate(nil),
			want: nil,
		},
		{
			name: "multiple name keywords",
			pred: person.NewNameContainsKeywordsPredicate([]string{"Kurz", "Elle", "Kunz"}),
			want: []*person.Person{testutil.Carl(), testutil.Elle(), testutil.Fiona()},
		},
		{
			name: "module code keywords",
			pred: person.NewModuleCodesContainsKeywordsPredicate([]string{"[cs2100]"}),
			want: []*person.Person{testutil.Benson(), testutil.Elle()},
		},
		{
			name: "tag keywords",
			pred: person.NewTagsContainsKeywordsPredicate([]string{"[friends]"}),
			want: []*person.Person{testutil.Alice(), testutil.Benson(), testutil.Daniel()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := typicalModel(t)
			res, err := command.NewFindCommand(tt.pred).Execute(m)
			require.NoError(t, err)

			assert.Equal(t, fmt.Sprintf(command.MessagePersonsListedOverview, len(tt.want)), res.Feedback)
			got := m.FilteredPersons()
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.True(t, got[i].Equal(tt.want[i]), "person %d: got %v, want %v", i, got[i], tt.want[i])
			}
		})
	}
}

func TestFindCommand_ExecuteReportsFilteredCount(t *testing.T) {
	m := newModel(t,
		testutil.NewPersonBuilder().WithName("Alex Yeoh").Build(),
		testutil.NewPersonBuilder().WithName("Bernice Yu").Build(),
		testutil.NewPersonBuilder().WithName("Alex Tan").Build(),
		testutil.NewPersonBuilder().WithName("David Li").Build(),
		testutil.NewPersonBuilder().WithName("Roy Balakrishnan").Build(),
	)

	res, err := command.NewFindCommand(person.NewNameContainsKeywordsPredicate([]string{"alex"})).Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "2 persons listed!", res.Feedback)
	assert.Len(t, m.FilteredPersons(), 2)
	assert.False(t, res.Exit)
	assert.False(t, res.ShowHelp)
}

func TestFindCommand_ExecuteRequiresModel(t *testing.T) {
	_, err := command.NewFindCommand(person.ShowAllPersons).Execute(nil)

	var nfe *errors.NullFieldError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "Model", nfe.Field)
}
