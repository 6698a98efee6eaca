// Package match decides whether a user-supplied identifier refers to a
// stored one.
//
// Two rules are provided:
//
//   - [PlainMatch]: case-insensitive substring containment. Used for
//     institution and department names.
//   - [Matcher.IdentityMatch]: plain match first, then a cross-script check
//     for queries written in CJK ideographs. The query is transliterated into
//     romanized syllables and every syllable must appear somewhere in the
//     candidate. Used for supervisor names.
//
// Cross-script matching only runs from an ideographic query to a candidate in
// any script; a romanized query never matches an ideographic candidate unless
// the plain check succeeds.
//
// # Precision
//
// Syllables are checked independently with no positional constraint, so a
// query whose syllables all occur in an unrelated, longer name also matches.
// "何明" (he, ming) matches "Kaiming He". This is deliberate recall over
// precision.
//
// # Transliteration
//
// The default [Transliterator] is [Pinyin]. Callers can supply any other
// scheme through [NewMatcher] or [TransliteratorFunc].
package match
