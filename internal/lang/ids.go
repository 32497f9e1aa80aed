// Package lang implements the two-phase language registry (spec.md
// §4.C): a declarative GrammarSpec/NotationSetSpec is built by the
// caller, compiled once into an immutable Language held by a global
// Storage, and thereafter accessed only through typed facades (Language,
// NotationSet, Construct, Sort) so a construct from one language can
// never be confused with another's.
//
// Grounded on the teacher's grammar/symbol/symbol.go packed-integer
// handle idiom (generalized here to plain unsigned ints, since synless-go
// has no need for vartan's terminal/non-terminal/start/EOF bit tags) and
// grammar/grammar.go's two-phase GrammarBuilder.Build(), and on
// original_source/src/language/compiled.rs for the exact compiled shape
// (hole injection, sort deduplication, notation-set indexing).
package lang

// ConstructID identifies a construct within a single compiled Language.
// It is only meaningful paired with that Language's LanguageID; the
// facade types in facade.go enforce this pairing.
type ConstructID int

// SortID identifies a deduplicated sort (bitset of ConstructIDs) within a
// single compiled Language.
type SortID int

// LanguageID identifies a Language registered in a Storage.
type LanguageID int

// NotationSetID identifies a NotationSet within a single compiled
// Language.
type NotationSetID int

const noSort = SortID(-1)
