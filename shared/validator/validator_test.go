package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/shared/failure"
	"lodge/shared/validator"
)

type createRoom struct {
	Number string `json:"number" validate:"required,max=10"`
	Type   string `json:"type"   validate:"required,oneof=standard deluxe suite"`
	Price  string `json:"price"  validate:"required,amount"`
	Date   string `json:"date"   validate:"omitempty,datetime=2006-01-02"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    createRoom
		wantErr string
	}{
		{
			name: "valid",
			data: createRoom{Number: "101", Type: "standard", Price: "120.00"},
		},
		{
			name:    "missing required field",
			data:    createRoom{Type: "standard", Price: "120.00"},
			wantErr: "number is required",
		},
		{
			name:    "bad enum value",
			data:    createRoom{Number: "101", Type: "penthouse", Price: "120.00"},
			wantErr: "type must be one of standard deluxe suite",
		},
		{
			name:    "negative amount",
			data:    createRoom{Number: "101", Type: "standard", Price: "-5.00"},
			wantErr: "price must be a non-negative decimal amount",
		},
		{
			name:    "malformed date",
			data:    createRoom{Number: "101", Type: "standard", Price: "120.00", Date: "17-07-2025"},
			wantErr: "date must be a valid date in 2006-01-02 format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, failure.IsBadRequest(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-08-01", "required,datetime=2006-01-02"))
	assert.Error(t, validator.ValidateVar("not-a-date", "required,datetime=2006-01-02"))
	assert.NoError(t, validator.ValidateVar("1500", "required,amount"))
	assert.Error(t, validator.ValidateVar("", "required,amount"))
}
