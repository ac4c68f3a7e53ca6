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

package tag_test

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model/tag"
	"gopkg.in/yaml.v3"
)

func TestIsValidTag(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"empty", "", false},
		{"space only", " ", false},
		{"with space", "best friend", false},
		{"with symbol", "friend*", false},
		{"letters", "friends", true},
		{"digits", "2024", true},
		{"mixed", "cs2103T", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tag.IsValidTag(tt.raw); got != tt.want {
				t.Errorf("IsValidTag(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNewTag(t *testing.T) {
	got, err := tag.NewTag("  friends ")
	if err != nil {
		t.Fatalf("NewTag() error = %v", err)
	}
	if got != tag.Tag("friends") {
		t.Errorf("NewTag() = %q, want %q", got, "friends")
	}

	_, err = tag.NewTag("no spaces allowed")
	var ce *errors.ConstraintError
	if !stderrors.As(err, &ce) {
		t.Fatalf("NewTag() error = %v, want ConstraintError", err)
	}
	if ce.Error() != tag.Constraints {
		t.Errorf("Error() = %q, want %q", ce.Error(), tag.Constraints)
	}
}

func TestTag_String(t *testing.T) {
	tg := tag.Tag("friends")
	if got := tg.String(); got != "[friends]" {
		t.Errorf("String() = %q, want %q", got, "[friends]")
	}
	if got := tg.Name(); got != "friends" {
		t.Errorf("Name() = %q", got)
	}
	if tg.Redacted() != tg.String() {
		t.Errorf("Redacted() = %q, want %q", tg.Redacted(), tg.String())
	}
	if tg.TypeName() != "Tag" {
		t.Errorf("TypeName() = %q", tg.TypeName())
	}
	if tg.IsZero() || !tag.Tag("").IsZero() {
		t.Errorf("IsZero() mismatch")
	}
}

func TestTag_JSON(t *testing.T) {
	data, err := json.Marshal(tag.Tag("colleagues"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"colleagues"` {
		t.Errorf("Marshal() = %s", data)
	}

	var got tag.Tag
	if err := json.Unmarshal([]byte(`" colleagues "`), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != "colleagues" {
		t.Errorf("Unmarshal() = %q", got)
	}

	if err := json.Unmarshal([]byte(`"two words"`), &got); err == nil {
		t.Error("Unmarshal(invalid) error = nil")
	}
	if _, err := json.Marshal(tag.Tag("bad tag")); err == nil {
		t.Error("Marshal(invalid) error = nil")
	}
}

func TestTag_YAML(t *testing.T) {
	data, err := yaml.Marshal(tag.Tag("friends"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "friends\n" {
		t.Errorf("Marshal() = %q", data)
	}

	var got tag.Tag
	if err := yaml.Unmarshal([]byte("friends"), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != "friends" {
		t.Errorf("Unmarshal() = %q", got)
	}
	if err := yaml.Unmarshal([]byte("fri-ends"), &got); err == nil {
		t.Error("Unmarshal(invalid) error = nil")
	}
}
