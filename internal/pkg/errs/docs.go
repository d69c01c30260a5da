// Package errs provides the typed errors shared by the atelier core.
//
// Each error kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//   - Unwrap returning the sentinel
//
// Callers that prefer the silent behaviour of the shop floor (ignore an unknown
// order id, for instance) test the sentinel and drop the error; everything else
// propagates it.
package errs
