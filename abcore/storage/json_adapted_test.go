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

package storage_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model/person"
	"github.com/tanruiquan/tp/abcore/model/tag"
	"github.com/tanruiquan/tp/abcore/storage"
	"github.com/tanruiquan/tp/abcore/testutil"
)

func str(s string) *string { return &s }

func validBenson() storage.JSONAdaptedPerson {
	return storage.FromPerson(testutil.Benson())
}

func TestJSONAdaptedPerson_RoundTrip(t *testing.T) {
	benson := testutil.Benson()

	got, err := storage.FromPerson(benson).ToModelType()
	require.NoError(t, err)
	assert.True(t, got.Equal(benson))
	assert.Equal(t, benson.Remark(), got.Remark())
}

func TestJSONAdaptedPerson_FromPersonIsSorted(t *testing.T) {
	p := testutil.NewPersonBuilder().WithModuleCodes("MA1521", "CS2100").WithTags("zoo", "alpha").Build()

	want := storage.JSONAdaptedPerson{
		Name:        str(testutil.DefaultName),
		Email:       str(testutil.DefaultEmail),
		ModuleCodes: []storage.JSONAdaptedModuleCode{{ModuleCode: "CS2100"}, {ModuleCode: "MA1521"}},
		Phone:       str(testutil.DefaultPhone),
		TeleHandle:  str(testutil.DefaultTeleHandle),
		Remark:      str(testutil.DefaultRemark),
		Tagged:      []storage.JSONAdaptedTag{{TagName: "alpha"}, {TagName: "zoo"}},
	}
	if diff := cmp.Diff(want, storage.FromPerson(p)); diff != "" {
		t.Errorf("FromPerson() mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONAdaptedPerson_ToModelTypeFailures(t *testing.T) {
	missing := func(field string) string {
		return fmt.Sprintf(storage.MissingFieldMessageFormat, field)
	}

	tests := []struct {
		name    string
		mutate  func(p *storage.JSONAdaptedPerson)
		message string
	}{
		{"invalid name", func(p *storage.JSONAdaptedPerson) { p.Name = str("R@chel") }, person.NameConstraints},
		{"null name", func(p *storage.JSONAdaptedPerson) { p.Name = nil }, missing("Name")},
		{"invalid phone", func(p *storage.JSONAdaptedPerson) { p.Phone = str("abc") }, person.PhoneConstraints},
		{"null phone", func(p *storage.JSONAdaptedPerson) { p.Phone = nil }, missing("Phone")},
		{"invalid email", func(p *storage.JSONAdaptedPerson) { p.Email = str("example.com") }, person.EmailConstraints},
		{"null email", func(p *storage.JSONAdaptedPerson) { p.Email = nil }, missing("Email")},
		{"null remark", func(p *storage.JSONAdaptedPerson) { p.Remark = nil }, missing("Remark")},
		{"invalid handle", func(p *storage.JSONAdaptedPerson) { p.TeleHandle = str("benson") }, person.TeleHandleConstraints},
		{"null handle", func(p *storage.JSONAdaptedPerson) { p.TeleHandle = nil }, missing("TeleHandle")},
		{"invalid tag", func(p *storage.JSONAdaptedPerson) {
			p.Tagged = append(p.Tagged, storage.JSONAdaptedTag{TagName: "#friend"})
		}, tag.Constraints},
		{"invalid module code", func(p *storage.JSONAdaptedPerson) {
			p.ModuleCodes = append(p.ModuleCodes, storage.JSONAdaptedModuleCode{ModuleCode: "CS"})
		}, person.ModuleCodeConstraints},
		{"tags are checked before name", func(p *storage.JSONAdaptedPerson) {
			p.Name = nil
			p.Tagged = []storage.JSONAdaptedTag{{TagName: "#friend"}}
		}, tag.Constraints},
		{"module codes are checked before name", func(p *storage.JSONAdaptedPerson) {
			p.Name = nil
			p.ModuleCodes = []storage.JSONAdaptedModuleCode{{ModuleCode: "CS"}}
		}, person.ModuleCodeConstraints},
		{"phone is checked before email", func(p *storage.JSONAdaptedPerson) {
			p.Phone = nil
			p.Email = nil
		}, missing("Phone")},
		{"remark is checked before handle", func(p *storage.JSONAdaptedPerson) {
			p.Remark = nil
			p.TeleHandle = nil
		}, missing("Remark")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validBenson()
			tt.mutate(&p)

			_, err := p.ToModelType()
			var ive *errors.IllegalValueError
			require.ErrorAs(t, err, &ive)
			assert.Equal(t, tt.message, ive.Message)
		})
	}
}

func TestJSONAdaptedPerson_EmptyRemarkIsValid(t *testing.T) {
	p := validBenson()
	p.Remark = str("")

	got, err := p.ToModelType()
	require.NoError(t, err)
	assert.True(t, got.Remark().IsZero())
}

func TestJSONAdaptedPerson_DuplicatesCollapse(t *testing.T) {
	p := validBenson()
	p.Tagged = []storage.JSONAdaptedTag{{TagName: "friends"}, {TagName: "friends"}}
	p.ModuleCodes = []storage.JSONAdaptedModuleCode{{ModuleCode: "cs2100"}, {ModuleCode: "CS2100"}}

	got, err := p.ToModelType()
	require.NoError(t, err)
	assert.Equal(t, 1, got.Tags().Len())
	assert.Equal(t, 1, got.ModuleCodes().Len())
	assert.True(t, got.ModuleCodes().Contains(person.ModuleCode("CS2100")))
}

func TestJSONAdaptedPerson_JSON(t *testing.T) {
	doc := `{
		"name": "Alex Yeoh",
		"email": "alexyeoh@example.com",
		"moduleCodes": [{"moduleCode": "CS2030S"}, "CS2100"],
		"phone": "87438807",
		"teleHandle": "@alexyeoh",
		"remark": "",
		"tagged": ["friends", {"tagName": "colleagues"}]
	}`

	var p storage.JSONAdaptedPerson
	require.NoError(t, json.Unmarshal([]byte(doc), &p))

	want := testutil.NewPersonBuilder().WithName("Alex Yeoh").WithEmail("alexyeoh@example.com").
		WithPhone("87438807").WithTeleHandle("@alexyeoh").WithRemark("").
		WithModuleCodes("CS2030S", "CS2100").WithTags("friends", "colleagues").Build()
	got, err := p.ToModelType()
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got %v", got)

	out, err := json.Marshal(storage.FromPerson(got))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Alex Yeoh",
		"email": "alexyeoh@example.com",
		"moduleCodes": [{"moduleCode": "CS2030S"}, {"moduleCode": "CS2100"}],
		"phone": "87438807",
		"teleHandle": "@alexyeoh",
		"remark": "",
		"tagged": [{"tagName": "colleagues"}, {"tagName": "friends"}]
	}`, string(out))

	var bad storage.JSONAdaptedTag
	var ue *errors.UnmarshalError
	assert.ErrorAs(t, json.Unmarshal([]byte(`42`), &bad), &ue)
}

func TestJSONAdaptedPerson_Equal(t *testing.T) {
	a, b := validBenson(), validBenson()
	assert.True(t, a.Equal(b))

	b.Remark = nil
	assert.False(t, a.Equal(b))
}
