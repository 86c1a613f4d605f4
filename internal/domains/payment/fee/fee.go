// Package fee splits a payment into the platform fee and the host payout.
package fee

const basisPointsDenominator = 10000

// Split returns the platform fee and host payout for amount, both in minor units.
// The fee is bps/10000 of amount rounded half-up to a multiple of unit; a unit below 1 means 1.
// fee + payout always equals amount.
func Split(amount, bps, unit int64) (fee, payout int64) {
	if unit < 1 {
		unit = 1
	}

	if amount <= 0 || bps <= 0 {
		return 0, amount
	}

	numerator := amount * bps
	denominator := basisPointsDenominator * unit

	fee = (2*numerator + denominator) / (2 * denominator) * unit
	if fee > amount {
		fee = amount
	}

	return fee, amount - fee
}

// ToMinor converts a major-unit amount (e.g. pounds) to minor units, rounding half-up.
func ToMinor(major float64) int64 {
	if major < 0 {
		return -ToMinor(-major)
	}

	return int64(major*100 + 0.5)
}
