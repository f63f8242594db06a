package domain

// voucherCredits is the fixed table of recognized recharge vouchers. The
// voucher id stands in for a verified bank transaction reference.
var voucherCredits = map[string]int64{
	"upg500":  500,
	"upg1000": 1000,
	"upg1500": 1500,
}

// VoucherCredit returns the credit amount for a voucher id, and whether
// the voucher is recognized.
func VoucherCredit(voucherID string) (int64, bool) {
	amount, ok := voucherCredits[voucherID]
	return amount, ok
}
