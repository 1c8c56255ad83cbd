// Package services provides domain services that coordinate the parcel
// aggregate with the entities around it.
//
// The package includes:
//   - PaymentProcessor: converts a deposit, pays a parcel down and records the ledger entry
//   - DispatchGate: lets a parcel leave once its balance is within the threshold and creates its tracker
//   - TrackingAuthorizer: restricts tracking views to the sender
package services
