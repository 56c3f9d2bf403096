package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn checks card numbers supplied as withdrawal payout details.
func IsLuhn(s string) bool {
	if s == "" {
		return false
	}
	err := goluhn.Validate(s)
	return err == nil
}
