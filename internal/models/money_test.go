package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want Money
	}{
		{"12.5", 1250},
		{"12.50", 1250},
		{"-3", -300},
		{"0.005", 1},
		{"-0.005", -1},
		{"0.004", 0},
		{"1999.999", 200000},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseMoney("ten")
	assert.Error(t, err)
}

func TestParseMoneyRange(t *testing.T) {
	got, err := ParseMoney("10000000000000")
	require.NoError(t, err)
	assert.Equal(t, MaxMoney, got)

	got, err = ParseMoney("-10000000000000")
	require.NoError(t, err)
	assert.Equal(t, -MaxMoney, got)

	for _, in := range []string{"10000000000000.01", "-10000000000000.01", "200000000000000000", "1e40"} {
		_, err := ParseMoney(in)
		assert.ErrorIs(t, err, ErrMoneyOutOfRange, in)
	}

	var body struct {
		Amount Money `json:"amount"`
	}
	err = json.Unmarshal([]byte(`{"amount":200000000000000000}`), &body)
	assert.ErrorIs(t, err, ErrMoneyOutOfRange)
	assert.Equal(t, Money(0), body.Amount)

	assert.True(t, MaxMoney.InRange())
	assert.False(t, (MaxMoney + 1).InRange())
	assert.False(t, (-MaxMoney - 1).InRange())
}

func TestNewMoney(t *testing.T) {
	assert.Equal(t, Money(1250), NewMoney(12, 50))
	assert.Equal(t, Money(-325), NewMoney(-3, 25))
	assert.Equal(t, "-3.25", NewMoney(-3, 25).String())
}

func TestMoneyJSON(t *testing.T) {
	raw, err := json.Marshal(struct {
		Amount Money `json:"amount"`
	}{Amount: 1250})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":12.50}`, string(raw))

	var in struct {
		A Money `json:"a"`
		B Money `json:"b"`
		C Money `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":12.5,"b":"7.25","c":null}`), &in))
	assert.Equal(t, Money(1250), in.A)
	assert.Equal(t, Money(725), in.B)
	assert.Equal(t, Money(0), in.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a":"abc"}`), &in))
}

func TestContribution(t *testing.T) {
	assert.Equal(t, Money(500), Contribution(EntryAdd, 500))
	assert.Equal(t, Money(-500), Contribution(EntrySubtract, 500))

	e := WalletEntry{Amount: 300, Type: EntrySubtract}
	assert.Equal(t, Money(-300), e.Contribution())
}
