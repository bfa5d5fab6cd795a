package thor

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVET(t *testing.T) {
	tests := []struct {
		in      string
		wantWei string
	}{
		{"1", "1000000000000000000"},
		{"0.5", "500000000000000000"},
		{"1000", "1000000000000000000000"},
		{"0.000000000000000001", "1"},
		{" 2.25 ", "2250000000000000000"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			wei, err := ParseVET(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.wantWei, wei.String())
		})
	}
}

func TestParseVETRejectsBadInput(t *testing.T) {
	for _, in := range []string{
		"",
		"abc",
		"0",
		"-1",
		"0.0000000000000000001", // 19 fractional digits
		"NaN",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseVET(in)
			require.Error(t, err)
		})
	}
}

func TestFormatVET(t *testing.T) {
	wei, ok := new(big.Int).SetString("1500000000000000000", 10)
	require.True(t, ok)
	assert.Equal(t, "1.5", FormatVET(wei))

	assert.Equal(t, "1", FormatVET(vetUnit))
	assert.Equal(t, "0.000000000000000001", FormatVET(big.NewInt(1)))
	assert.Equal(t, "0", FormatVET(big.NewInt(0)))
	assert.Equal(t, "0", FormatVET(nil))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, amount := range []string{"1", "0.5", "123.456789", "0.000000000000000001"} {
		wei, err := ParseVET(amount)
		require.NoError(t, err)
		assert.Equal(t, amount, FormatVET(wei))
	}
}
