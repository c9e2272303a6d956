package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("js"))
	assert.NoError(t, ValidateUsername("stw"))
	assert.Error(t, ValidateUsername(""))
	assert.Error(t, ValidateUsername("   "))
	assert.Error(t, ValidateUsername("JS"))
	assert.Error(t, ValidateUsername("js1"))
}

func TestValidatePIN(t *testing.T) {
	assert.NoError(t, ValidatePIN("1111"))
	assert.NoError(t, ValidatePIN("0042"))
	assert.Error(t, ValidatePIN("111"))
	assert.Error(t, ValidatePIN("11111"))
	assert.Error(t, ValidatePIN("abcd"))
	assert.Error(t, ValidatePIN(""))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount("150"))
	assert.NoError(t, ValidateAmount("150.50"))
	assert.Error(t, ValidateAmount(""))
	assert.Error(t, ValidateAmount("0"))
	assert.Error(t, ValidateAmount("-10"))
	assert.Error(t, ValidateAmount("abc"))
}

func TestParsePIN(t *testing.T) {
	pin, err := ParsePIN("1111")
	require.NoError(t, err)
	assert.Equal(t, 1111, pin)
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("150.50")
	require.NoError(t, err)
	assert.Equal(t, int64(15050), amount)
}
