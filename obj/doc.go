// Package obj provides typed, generic helpers for Go maps: key and value
// views, in-place merging (Extend, ExtendOwn, Defaults), selection (Pick,
// Omit), shallow and deep copies, and property accessors.
//
// Only Extend, ExtendOwn and Defaults write to their first argument. Every
// other helper returns a new map. Go maps have no iteration order, so the
// order of Keys, Values and Pairs is unspecified.
package obj
