// Package deb822 is a round-trip-safe parser, element tree, and editor for
// the RFC822-style "deb822" text format Debian control files use
// (debian/control, Packages, Release, and friends).
//
// ParseFile builds a FileElement (see the ast subpackage) whose Text()
// always reproduces the input exactly, byte for byte, whether or not the
// input is syntactically valid deb822. Most callers don't need the
// element tree directly: Deb822 and ConfiguredView give a dict-like view
// over a paragraph's fields, and InterpretedView exposes a field's value
// as an editable, typed list (whitespace- or comma-separated) via the
// list subpackage.
//
// Mutating a field never hand-patches the tree: every mutation
// serializes a replacement fragment and re-parses it through the same
// tokenizer and builder used for whole files, then grafts the result in,
// so the usual invariants (round-trip safety, parent-link integrity) are
// re-checked rather than assumed.
package deb822
