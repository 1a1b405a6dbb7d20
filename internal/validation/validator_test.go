package validation

import (
	"strings"
	"testing"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name   string           `json:"name" validate:"required,max=10"`
	Color  string           `json:"color" validate:"omitempty,hexcolor36"`
	Type   models.EntryType `json:"type" validate:"omitempty,entrytype"`
	Role   models.Role      `json:"role" validate:"omitempty,sharerole"`
	Amount models.Money     `json:"amount" validate:"positivemoney,maxmoney"`
	Tags   []string         `json:"tags" validate:"max=2,unique"`
	Action string           `json:"action" validate:"omitempty,oneof=accept decline"`
}

func valid() sample {
	return sample{Name: "ok", Amount: 1}
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sample)
		msg    string
	}{
		{"valid", func(s *sample) {}, ""},
		{"missing name", func(s *sample) { s.Name = "" }, "name is required"},
		{"long name", func(s *sample) { s.Name = strings.Repeat("x", 11) }, "name must be at most 10 characters"},
		{"bad color", func(s *sample) { s.Color = "#12" }, "Invalid hex color format"},
		{"short color", func(s *sample) { s.Color = "#abc" }, ""},
		{"bad type", func(s *sample) { s.Type = "multiply" }, "type must be add or subtract"},
		{"owner role", func(s *sample) { s.Role = models.RoleOwner }, "role must be viewer or partner"},
		{"zero amount", func(s *sample) { s.Amount = 0 }, "Amount must be greater than 0"},
		{"max amount", func(s *sample) { s.Amount = models.MaxMoney }, ""},
		{"huge amount", func(s *sample) { s.Amount = models.MaxMoney + 1 }, "Amount must be at most 10000000000000.00"},
		{"too many tags", func(s *sample) { s.Tags = []string{"a", "b", "c"} }, "tags must contain at most 2 items"},
		{"duplicate tags", func(s *sample) { s.Tags = []string{"a", "a"} }, "tags must not contain duplicates"},
		{"bad action", func(s *sample) { s.Action = "maybe" }, "action must be one of: accept, decline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			err := Struct(s)
			if tt.msg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestHexColor(t *testing.T) {
	assert.True(t, HexColor("#3B82F6"))
	assert.True(t, HexColor("#fff"))
	assert.False(t, HexColor("3B82F6"))
	assert.False(t, HexColor("#3B82F"))
}
