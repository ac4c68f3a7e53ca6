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

package person

import (
	"slices"
	"strings"
)

// Predicate is a pure boolean test over a Person used to filter the list of
// persons shown to the user.
type Predicate interface {
	// Test reports whether p matches.
	Test(p *Person) bool

	// Equal reports whether other is the same predicate with the same
	// keywords.
	Equal(other Predicate) bool
}

// ShowAllPersons matches every person.
var ShowAllPersons Predicate = showAll{}

type showAll struct{}

// Test always reports true.
func (showAll) Test(*Person) bool { return true }

// Equal reports whether other also shows every person.
func (showAll) Equal(other Predicate) bool {
	_, ok := other.(showAll)
	return ok
}

// NameContainsKeywordsPredicate matches persons whose name contains any of
// the keywords as a whole word, ignoring case. "alex" matches "Alex Yeoh"
// but "ale" does not.
type NameContainsKeywordsPredicate struct {
	keywords []string
}

// NewNameContainsKeywordsPredicate returns a predicate over a copy of
// keywords.
func NewNameContainsKeywordsPredicate(keywords []string) NameContainsKeywordsPredicate {
	return NameContainsKeywordsPredicate{keywords: slices.Clone(keywords)}
}

// Keywords returns a copy of the keywords.
func (pr NameContainsKeywordsPredicate) Keywords() []string {
	return slices.Clone(pr.keywords)
}

// Test reports whether any word of the name equals a keyword, ignoring case.
func (pr NameContainsKeywordsPredicate) Test(p *Person) bool {
	words := p.Name().Words()
	for _, keyword := range pr.keywords {
		for _, word := range words {
			if strings.EqualFold(word, keyword) {
				return true
			}
		}
	}
	return false
}

// Equal reports whether other is a NameContainsKeywordsPredicate with the
// same keywords.
func (pr NameContainsKeywordsPredicate) Equal(other Predicate) bool {
	o, ok := other.(NameContainsKeywordsPredicate)
	return ok && slices.Equal(pr.keywords, o.keywords)
}

// ModuleCodesContainsKeywordsPredicate matches persons having a module
// code whose bracketed rendering equals any keyword, ignoring case.
//
// Keywords are expected in bracketed form, as produced by the find
// parser: the keyword "[cs2030s]" matches the module code CS2030S, whose
// rendering is "[CS2030S]". A bare "cs2030s" never matches.
type ModuleCodesContainsKeywordsPredicate struct {
	keywords []string
}

// NewModuleCodesContainsKeywordsPredicate returns a predicate matching
// persons with a module code equal to any keyword, ignoring case. Keywords
// are compared with the bracketed form, for example "[CS2103T]".
func NewModuleCodesContainsKeywordsPredicate(keywords []string) ModuleCodesContainsKeywordsPredicate {
	return ModuleCodesContainsKeywordsPredicate{keywords: slices.Clone(keywords)}
}

// Keywords returns a copy of the keywords.
func (pr ModuleCodesContainsKeywordsPredicate) Keywords() []string {
	return slices.Clone(pr.keywords)
}

// Test reports whether any module code of p matches a keyword.
func (pr ModuleCodesContainsKeywordsPredicate) Test(p *Person) bool {
	for _, code := range p.ModuleCodes().Items() {
		if matchesAny(code.String(), pr.keywords) {
			return true
		}
	}
	return false
}

// Equal reports whether other is a ModuleCodesContainsKeywordsPredicate with
// the same keywords.
func (pr ModuleCodesContainsKeywordsPredicate) Equal(other Predicate) bool {
	o, ok := other.(ModuleCodesContainsKeywordsPredicate)
	return ok && slices.Equal(pr.keywords, o.keywords)
}

// TagsContainsKeywordsPredicate matches persons having a tag whose
// bracketed rendering equals any keyword, ignoring case. Keywords are in
// bracketed form, as for ModuleCodesContainsKeywordsPredicate.
type TagsContainsKeywordsPredicate struct {
	keywords []string
}

// NewTagsContainsKeywordsPredicate returns a predicate matching persons with
// a tag equal to any keyword, ignoring case. Keywords are compared with the
// bracketed form, for example "[friends]".
func NewTagsContainsKeywordsPredicate(keywords []string) TagsContainsKeywordsPredicate {
	return TagsContainsKeywordsPredicate{keywords: slices.Clone(keywords)}
}

// Keywords returns a copy of the keywords.
func (pr TagsContainsKeywordsPredicate) Keywords() []string {
	return slices.Clone(pr.keywords)
}

// Test reports whether any tag of p matches a keyword.
func (pr TagsContainsKeywordsPredicate) Test(p *Person) bool {
	for _, t := range p.Tags().Items() {
		if matchesAny(t.String(), pr.keywords) {
			return true
		}
	}
	return false
}

// Equal reports whether other is a TagsContainsKeywordsPredicate with the
// same keywords.
func (pr TagsContainsKeywordsPredicate) Equal(other Predicate) bool {
	o, ok := other.(TagsContainsKeywordsPredicate)
	return ok && slices.Equal(pr.keywords, o.keywords)
}

func matchesAny(rendered string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.EqualFold(rendered, keyword) {
			return true
		}
	}
	return false
}
