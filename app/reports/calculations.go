package reports

import "math"

// Percentage returns obtained/max as a percentage rounded to two decimals.
// A zero maximum yields zero rather than a division error.
func Percentage(obtained, max float64) float64 {
	if max == 0 {
		return 0
	}
	return math.Round(obtained/max*10000) / 100
}

// GradeFor maps a percentage to a letter grade.
func GradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 75:
		return "A"
	case percentage >= 60:
		return "B"
	case percentage >= 40:
		return "C"
	default:
		return "F"
	}
}

// ReceiptTotals computes the summary figures printed on a fee receipt.
// totalPaid and totalUnpaid are the student's overall fee totals; paidNow is
// the amount on the receipt's own invoice. When the invoice was already
// marked paid its amount is part of totalPaid, so it is not added twice.
func ReceiptTotals(paidNow float64, alreadyPaid bool, totalPaid, totalUnpaid float64) (displayTotalPaid, remainingAfterPayment float64) {
	if alreadyPaid {
		displayTotalPaid = totalPaid
	} else {
		displayTotalPaid = totalPaid + paidNow
	}
	remainingAfterPayment = math.Max(0, totalUnpaid-paidNow)
	return displayTotalPaid, remainingAfterPayment
}
