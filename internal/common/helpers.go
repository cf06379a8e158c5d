package common

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ETHDecimals  = 18 // ETH has 18 decimals (wei)
	USDCDecimals = 6  // USDC has 6 decimals (micro)
)

// WeiToETH converts wei to an ETH string without float precision loss
func WeiToETH(wei uint64) string {
	return FormatWithDecimals(wei, ETHDecimals)
}

// ETHToWei converts an ETH string to wei without float precision loss
func ETHToWei(eth string) (uint64, error) {
	return ParseWithDecimals(eth, ETHDecimals)
}

// MicroToUSDC converts micro units to a USDC string without float precision loss
func MicroToUSDC(micro uint64) string {
	return FormatWithDecimals(micro, USDCDecimals)
}

// USDCToMicro converts a USDC string to micro units without float precision loss
func USDCToMicro(usdc string) (uint64, error) {
	return ParseWithDecimals(usdc, USDCDecimals)
}

// FormatWithDecimals converts integer to decimal string by inserting decimal point
// Example: FormatWithDecimals(24981836, 9) = "0.024981836"
func FormatWithDecimals(value uint64, decimals int) string {
	s := fmt.Sprintf("%d", value)

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// ParseWithDecimals converts decimal string to integer by removing decimal point
// Example: ParseWithDecimals("0.024981836", 9) = 24981836
func ParseWithDecimals(s string, decimals int) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}

	parts := strings.Split(s, ".")

	if len(parts) == 1 {
		// No decimal point - multiply by 10^decimals
		n, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return 0, err
		}
		for i := 0; i < decimals; i++ {
			n *= 10
		}
		return n, nil
	}

	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid decimal format")
	}

	whole := parts[0]
	frac := parts[1]

	// Pad or truncate fractional part to exact decimals
	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else if len(frac) > decimals {
		frac = frac[:decimals]
	}

	combined := whole + frac
	return strconv.ParseUint(combined, 10, 64)
}

// CompareAmounts compares two decimal string amounts at the given precision
// without float precision loss.
// Returns: -1 if a < b, 0 if a == b, 1 if a > b, and error if parsing fails
func CompareAmounts(a, b string, decimals int) (int, error) {
	aVal, err := ParseWithDecimals(a, decimals)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", a, err)
	}

	bVal, err := ParseWithDecimals(b, decimals)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", b, err)
	}

	if aVal < bVal {
		return -1, nil
	}
	if aVal > bVal {
		return 1, nil
	}
	return 0, nil
}
