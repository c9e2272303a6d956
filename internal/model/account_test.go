package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveUsername(t *testing.T) {
	tests := []struct {
		owner string
		want  string
	}{
		{"Jonas Schmedtmann", "js"},
		{"Jessica Davis", "jd"},
		{"Steven Thomas Williams", "stw"},
		{"Sarah Smith", "ss"},
		{"  Padded   Name  ", "pn"},
		{"single", "s"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveUsername(tt.owner), "owner %q", tt.owner)
	}
}

func TestFirstName(t *testing.T) {
	acc := &Account{Owner: "Steven Thomas Williams"}
	assert.Equal(t, "Steven", acc.FirstName())
}

func TestMovementDeposit(t *testing.T) {
	assert.True(t, Movement{Amount: 100}.Deposit())
	assert.False(t, Movement{Amount: -100}.Deposit())
	assert.False(t, Movement{Amount: 0}.Deposit())
}
