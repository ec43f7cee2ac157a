package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llvmconf/llvmconf/llvm"
)

func v(major, minor int) llvm.Version {
	return llvm.Version{Major: major, Minor: minor}
}

func TestCheckVersion_TooLow(t *testing.T) {
	var diags []Diagnostic
	err := checkVersion(v(8, 0), v(9, 0), v(14, 0), &diags)
	require.ErrorIs(t, err, ErrVersionTooLow)
	assert.ErrorContains(t, err, "8.0")
	assert.ErrorContains(t, err, "9.0")
	assert.Empty(t, diags)
}

func TestCheckVersion_ExactMinimum(t *testing.T) {
	var diags []Diagnostic
	err := checkVersion(v(9, 0), v(9, 0), v(14, 0), &diags)
	require.NoError(t, err)
	assert.Empty(t, diags, "minimum version must pass without a warning")
}

func TestCheckVersion_AboveTestedRange(t *testing.T) {
	var diags []Diagnostic
	err := checkVersion(v(15, 0), v(9, 0), v(14, 0), &diags)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, WarnVersionAboveTestedRange, diags[0].Code)
}

func TestCheckVersion_WithinRange(t *testing.T) {
	var diags []Diagnostic
	err := checkVersion(v(12, 0), v(9, 0), v(14, 0), &diags)
	require.NoError(t, err)
	assert.Empty(t, diags)
}
