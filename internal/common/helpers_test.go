package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWithDecimals(t *testing.T) {
	tests := []struct {
		value    uint64
		decimals int
		want     string
	}{
		{value: 24981836, decimals: 9, want: "0.024981836"},
		{value: 1_000_000, decimals: 6, want: "1.000000"},
		{value: 0, decimals: 6, want: "0.000000"},
		{value: 1_500_000_000_000_000_000, decimals: 18, want: "1.500000000000000000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatWithDecimals(tt.value, tt.decimals))
	}
}

func TestParseWithDecimals(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    uint64
		wantErr bool
	}{
		{name: "fraction", in: "0.024981836", want: 24981836},
		{name: "whole", in: "3", want: 3_000_000_000},
		{name: "padded", in: "1.5", want: 1_500_000_000},
		{name: "truncated extra digits", in: "0.0000000001", want: 0},
		{name: "whitespace", in: " 2 ", want: 2_000_000_000},
		{name: "empty", in: "", wantErr: true},
		{name: "two dots", in: "1.2.3", wantErr: true},
		{name: "not a number", in: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWithDecimals(tt.in, 9)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundTripETHAndUSDC(t *testing.T) {
	wei, err := ETHToWei("0.500000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "0.500000000000000000", WeiToETH(wei))

	micro, err := USDCToMicro("129.990000")
	require.NoError(t, err)
	assert.Equal(t, "129.990000", MicroToUSDC(micro))
}

func TestCompareAmounts(t *testing.T) {
	cmp, err := CompareAmounts("1.50", "1.5", USDCDecimals)
	require.NoError(t, err)
	assert.Zero(t, cmp)

	cmp, err = CompareAmounts("0.9", "1.0", USDCDecimals)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	cmp, err = CompareAmounts("2", "1.999999", USDCDecimals)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	_, err = CompareAmounts("x", "1", USDCDecimals)
	assert.Error(t, err)
}
