package kernel

import "strconv"

// Charge is an amount of delivery charge units owed on a parcel.
type Charge uint64

// Sub subtracts paid from c, saturating at zero.
func (c Charge) Sub(paid Charge) Charge {
	if paid >= c {
		return 0
	}
	return c - paid
}

// Paid returns how much of paid was actually absorbed by c.
func (c Charge) Paid(paid Charge) Charge {
	return c - c.Sub(paid)
}

func (c Charge) IsZero() bool {
	return c == 0
}

// Exceeds reports whether c is strictly above limit.
func (c Charge) Exceeds(limit Charge) bool {
	return c > limit
}

func (c Charge) Uint64() uint64 {
	return uint64(c)
}

func (c Charge) String() string {
	return strconv.FormatUint(uint64(c), 10)
}
