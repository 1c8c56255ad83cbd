// Package payment holds the payment ledger entry. The parcel aggregate owns
// the balance; the ledger only records how it got there.
package payment
