// Package errs provides the typed errors shared by the parcel registry.
//
// Each error kind comes as a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired) plus a struct carrying the
// offending parameter and an optional cause. The structs unwrap to their
// sentinel, so callers classify with errors.Is and inspect details with
// errors.As.
//
// ObjectNotFoundError is the NotFound kind of the registry; the three value
// errors together form its InvalidInput kind (see IsInvalidInput).
package errs
