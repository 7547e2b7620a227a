package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_RarityTag(t *testing.T) {
	type payload struct {
		Rarity string `validate:"omitempty,rarity"`
	}

	v := GetValidator()

	tests := []struct {
		name    string
		rarity  string
		wantErr bool
	}{
		{"Empty is allowed", "", false},
		{"Known tier", "legendary", false},
		{"Mixed case tier", "Epic", false},
		{"Unknown tier", "ultrarare", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(payload{Rarity: tt.rarity})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	type payload struct {
		TableID string `validate:"required"`
		Rarity  string `validate:"omitempty,rarity"`
	}

	err := GetValidator().ValidateStruct(payload{Rarity: "bogus"})
	fields := FormatValidationError(err)

	assert.Equal(t, "This field is required", fields["tableid"])
	assert.Equal(t, ErrMsgInvalidRarityArg, fields["rarity"])
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	fields := FormatValidationError(assert.AnError)
	assert.Equal(t, "Invalid request format", fields["error"])
}
