package thor

import (
	"fmt"
	"math/big"
	"strings"
)

// vetUnit is the fixed-point scale of on-chain amounts: 1 VET = 1e18 wei.
var vetUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// ParseVET converts a positive decimal string into wei. Amounts with more
// than 18 fractional digits are rejected rather than silently truncated.
func ParseVET(amount string) (*big.Int, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(amount))
	if !ok {
		return nil, fmt.Errorf("malformed amount %q", amount)
	}
	if r.Sign() <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %q", amount)
	}

	wei := new(big.Rat).Mul(r, new(big.Rat).SetInt(vetUnit))
	if !wei.IsInt() {
		return nil, fmt.Errorf("amount %q has more than 18 decimal places", amount)
	}
	return wei.Num(), nil
}

// FormatVET converts wei into a decimal string, trimming trailing zeros.
func FormatVET(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	s := new(big.Rat).SetFrac(wei, vetUnit).FloatString(18)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
