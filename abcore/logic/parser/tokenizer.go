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

// Package parser turns command text into commands.
//
// Command text has the form
//
//	WORD [PREAMBLE] [PREFIX VALUE]...
//
// where each PREFIX (such as "n/") is recognized only when it follows
// whitespace. The tokenizer splits the arguments into an ArgumentMultimap;
// each command has its own Parser that validates the values and builds the
// command. AddressBookParser dispatches on the command word.
//
// Every failure is reported as *errors.ParseError whose Message is the text
// shown to the user.
package parser

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix marks the start of an argument value, for example "n/".
type Prefix string

// Prefixes understood by the address book commands.
const (
	PrefixName       Prefix = "n/"
	PrefixPhone      Prefix = "p/"
	PrefixEmail      Prefix = "e/"
	PrefixTeleHandle Prefix = "h/"
	PrefixModuleCode Prefix = "m/"
	PrefixTag        Prefix = "t/"
	PrefixRemark     Prefix = "r/"
)

// String returns the prefix text, for example "n/".
func (p Prefix) String() string {
	return string(p)
}

// ArgumentMultimap maps each prefix to the values that followed it, in
// order of appearance. The text before the first prefix is the preamble.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Value returns the last value given for p.
func (m ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p, in order.
func (m ArgumentMultimap) AllValues(p Prefix) []string {
	return slices.Clone(m.values[p])
}

// Has reports whether p appeared at least once.
func (m ArgumentMultimap) Has(p Prefix) bool {
	return len(m.values[p]) > 0
}

// Preamble returns the trimmed text before the first prefix.
func (m ArgumentMultimap) Preamble() string {
	return m.preamble
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args by the given prefixes. Values are trimmed. Text that
// looks like a prefix but does not follow whitespace belongs to the
// preceding value.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	var positions []prefixPosition
	for _, p := range prefixes {
		positions = append(positions, findPrefixPositions(args, p)...)
	}
	slices.SortFunc(positions, func(a, b prefixPosition) int {
		return a.start - b.start
	})

	m := ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	m.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		end := len(args)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : end])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}

func findPrefixPositions(args string, p Prefix) []prefixPosition {
	var out []prefixPosition
	for from := 0; from < len(args); {
		i := strings.Index(args[from:], string(p))
		if i < 0 {
			break
		}
		i += from
		if r, _ := utf8.DecodeLastRuneInString(args[:i]); i > 0 && unicode.IsSpace(r) {
			out = append(out, prefixPosition{prefix: p, start: i})
		}
		from = i + len(p)
	}
	return out
}
