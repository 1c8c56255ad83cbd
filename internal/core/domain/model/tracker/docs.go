// Package tracker holds the Tracker entity: the current location of a
// dispatched parcel and whether it has arrived.
package tracker
