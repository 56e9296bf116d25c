package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/internal/domains/command/parser"
)

func TestParse_BlockRoom(t *testing.T) {
	tests := []struct {
		name    string
		message string
		room    string
		from    string
		to      string
	}{
		{
			name:    "plain",
			message: "block room 105 from 2025-07-10 to 2025-07-17",
			room:    "105",
			from:    "2025-07-10",
			to:      "2025-07-17",
		},
		{
			name:    "mixed case",
			message: "Block Room 204 from tomorrow to friday",
			room:    "204",
			from:    "tomorrow",
			to:      "friday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := parser.Parse(tt.message)

			require.NoError(t, err)
			assert.Equal(t, parser.IntentBlockRoom, cmd.Intent)
			assert.Equal(t, tt.room, cmd.Room)
			assert.Equal(t, tt.from, cmd.From)
			assert.Equal(t, tt.to, cmd.To)
		})
	}
}

func TestParse_SetPrice(t *testing.T) {
	cmd, err := parser.Parse("set price to ₹1500 on 2025-07-12")

	require.NoError(t, err)
	assert.Equal(t, parser.IntentSetPrice, cmd.Intent)
	assert.Equal(t, "1500", cmd.Price)
	assert.Equal(t, "2025-07-12", cmd.Date)
}

func TestParse_SetPriceWithoutCurrencySign(t *testing.T) {
	cmd, err := parser.Parse("Set price to 99.50 on saturday")

	require.NoError(t, err)
	assert.Equal(t, parser.IntentSetPrice, cmd.Intent)
	assert.Equal(t, "99.50", cmd.Price)
	assert.Equal(t, "saturday", cmd.Date)
}

func TestParse_Unrecognized(t *testing.T) {
	cmd, err := parser.Parse("good morning, any rooms free tonight?")

	assert.ErrorIs(t, err, parser.ErrUnrecognized)
	assert.Equal(t, parser.IntentUnknown, cmd.Intent)
}
