// Package util provides generic ordered-sequence and map utilities.
//
// The sequence functions all take the slice as their first argument and
// never mutate it; collection features forward to them by name.
package util
