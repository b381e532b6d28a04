package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentValid(t *testing.T) {
	for _, d := range AllDepartments {
		assert.True(t, d.Valid(), "department %s", d)
	}

	assert.False(t, Department("EEE").Valid())
	assert.False(t, Department("cse").Valid(), "matching is case sensitive")
	assert.False(t, Department("").Valid())
}

func TestValidateDepartmentError(t *testing.T) {
	require.NoError(t, ValidateDepartment(DepartmentCSEAIDS))

	err := ValidateDepartment("MECH")
	require.ErrorIs(t, err, ErrInvalidDepartment)
	assert.Contains(t, err.Error(), `"MECH"`)
	assert.Contains(t, err.Error(), "CSE, CSE_AIML, CSE_AIDS, CSE_DS, ECE, HS")
}
