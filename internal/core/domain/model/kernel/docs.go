// Package kernel holds the value objects shared by the parcel registry's
// aggregates: ParcelID (the monotonically issued identifier), Phone (the
// sender credential), Charge (outstanding delivery charge units with
// saturating subtraction), Deposit (native payment amount and its fixed
// exchange rate into charge units) and UUID (ledger entry identity).
//
// Values are immutable and must come from their constructors; zero values
// fail Validate.
package kernel
