// Package errors provides lightweight error handling and classification primitives.
//
// The package allows to create classified detailed errors, check their
// classification and join multiple errors into a single one.
package errors
