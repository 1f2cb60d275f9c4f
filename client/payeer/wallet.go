package payeer

import "regexp"

var walletRegex = regexp.MustCompile(`^P[0-9]{7,12}$`)

// ValidateWallet accepts account numbers of the form P1000000:
// a literal P followed by 7 to 12 digits.
func ValidateWallet(wallet string) error {
	if !walletRegex.MatchString(wallet) {
		return &ValidationError{Field: "wallet", Value: wallet}
	}
	return nil
}
