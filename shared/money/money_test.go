package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/shared/money"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "plain amount", value: "120.00", want: "120.00"},
		{name: "no decimal places", value: "600", want: "600.00"},
		{name: "empty string is zero", value: "", want: "0.00"},
		{name: "garbage", value: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := money.Parse(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, money.Format(amount))
		})
	}
}

func TestSum_NoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 is the classic binary float trap.
	total, err := money.Sum("0.10", "0.20")
	require.NoError(t, err)
	assert.Equal(t, "0.30", money.Format(total))
}

func TestSum(t *testing.T) {
	total, err := money.Sum("600.00", "0.00", "120.50")
	require.NoError(t, err)
	assert.Equal(t, "720.50", money.Format(total))

	_, err = money.Sum("600.00", "not-a-number")
	assert.Error(t, err)
}

func TestIsAmount(t *testing.T) {
	assert.True(t, money.IsAmount("120.00"))
	assert.True(t, money.IsAmount("0"))
	assert.False(t, money.IsAmount("-5.00"))
	assert.False(t, money.IsAmount(""))
	assert.False(t, money.IsAmount("12,00"))
}
