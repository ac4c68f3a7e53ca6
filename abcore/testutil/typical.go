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

package testutil

import "github.com/tanruiquan/tp/abcore/model/person"

// Typical persons shared by tests. Each call returns fresh values.
func Alice() *person.Person {
	return NewPersonBuilder().WithName("Alice Pauline").WithEmail("alice@example.com").
		WithPhone("94351253").WithTeleHandle("@alice_pauline").WithRemark("").
		WithModuleCodes("CS2030S").WithTags("friends").Build()
}

// Benson returns Benson Meier.
func Benson() *person.Person {
	return NewPersonBuilder().WithName("Benson Meier").WithEmail("johnd@example.com").
		WithPhone("98765432").WithTeleHandle("@benson_meier").WithRemark("Owes lunch").
		WithModuleCodes("CS2030S", "CS2100").WithTags("owesMoney", "friends").Build()
}

// Carl returns Carl Kurz.
func Carl() *person.Person {
	return NewPersonBuilder().WithName("Carl Kurz").WithEmail("heinz@example.com").
		WithPhone("95352563").WithTeleHandle("@carlkurz").WithRemark("").Build()
}

// Daniel returns Daniel Meier.
func Daniel() *person.Person {
	return NewPersonBuilder().WithName("Daniel Meier").WithEmail("cornelia@example.com").
		WithPhone("87652533").WithTeleHandle("@daniel_m").WithRemark("").
		WithModuleCodes("MA1521").WithTags("friends").Build()
}

// Elle returns Elle Meyer.
func Elle() *person.Person {
	return NewPersonBuilder().WithName("Elle Meyer").WithEmail("werner@example.com").
		WithPhone("9482224").WithTeleHandle("@elle_meyer").WithRemark("").
		WithModuleCodes("CS2100").Build()
}

// Fiona returns Fiona Kunz.
func Fiona() *person.Person {
	return NewPersonBuilder().WithName("Fiona Kunz").WithEmail("lydia@example.com").
		WithPhone("9482427").WithTeleHandle("@fiona_kunz").WithRemark("").Build()
}

// George returns George Best.
func George() *person.Person {
	return NewPersonBuilder().WithName("George Best").WithEmail("anna@example.com").
		WithPhone("9482442").WithTeleHandle("@george_best").WithRemark("").
		WithTags("colleagues").Build()
}

// Amy and Bob are not part of TypicalPersons; tests add them.
func Amy() *person.Person {
	return NewPersonBuilder().WithName("Amy Bee").WithEmail("amy@example.com").
		WithPhone("11111111").WithTeleHandle("@amy_bee").WithRemark("").
		WithModuleCodes("GEA1000").WithTags("friend").Build()
}

// Bob returns Bob Choo.
func Bob() *person.Person {
	return NewPersonBuilder().WithName("Bob Choo").WithEmail("bob@example.com").
		WithPhone("22222222").WithTeleHandle("@bob_choo").WithRemark("").
		WithModuleCodes("CS2103T").WithTags("husband", "friend").Build()
}

// TypicalPersons returns Alice through George in insertion order.
func TypicalPersons() []*person.Person {
	return []*person.Person{Alice(), Benson(), Carl(), Daniel(), Elle(), Fiona(), George()}
}
