// Package parcel holds the Parcel aggregate root and its lifecycle.
//
// A parcel is registered with a positive delivery charge, paid down in any
// number of payments (never below zero) and finally dispatched, which the
// aggregate allows only while the balance is within the dispatch threshold.
// Tracking lives in its own aggregate (package tracker) keyed by the same
// identifier.
package parcel
