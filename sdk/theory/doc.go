// Package theory holds the pitch model and the pure operations built on it:
// note parsing, the transformation algebra and interval/chord analysis.
//
// Every function in this package is a pure computation over values. Nothing
// here returns an error for malformed text: a token that is not a note parses
// to (Pitch{}, false), and a transformation that cannot be understood leaves
// its input unchanged.
package theory
