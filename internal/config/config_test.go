package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llvmconf/llvmconf/llvm"
	"github.com/llvmconf/llvmconf/resolve"
)

func TestRead_Defaults(t *testing.T) {
	c, err := Read(t.Context(), "")
	require.NoError(t, err)

	assert.Equal(t, "9.0", c.MinVersion)
	assert.Equal(t, "14.0", c.SoftMaxVersion)
	assert.False(t, c.WithRTTI)
	assert.True(t, c.WithExceptions)
	assert.Equal(t, "gnu", c.Toolchain)
	assert.Equal(t, "info", c.LogLevel)
}

func TestRead_Environment(t *testing.T) {
	t.Setenv("LLVMCONF_MIN_VERSION", "11.0")
	t.Setenv("LLVMCONF_WITH_RTTI", "true")

	c, err := Read(t.Context(), "")
	require.NoError(t, err)
	assert.Equal(t, "11.0", c.MinVersion)
	assert.True(t, c.WithRTTI)
}

func TestRead_FileWinsOverEnvironment(t *testing.T) {
	t.Setenv("LLVMCONF_MIN_VERSION", "11.0")

	path := filepath.Join(t.TempDir(), "llvmconf.yaml")
	data := "minVersion: \"12.0\"\ntargets:\n  webassembly: \"off\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Read(t.Context(), path)
	require.NoError(t, err)
	assert.Equal(t, "12.0", c.MinVersion)
	assert.Equal(t, map[string]string{"webassembly": "off"}, c.Targets)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(t.Context(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestResolveConversion(t *testing.T) {
	c := &Config{
		MinVersion:     "9.0",
		SoftMaxVersion: "14.1",
		WithRTTI:       true,
		WithExceptions: true,
		Toolchain:      "gnu",
		Targets:        map[string]string{"riscv": "on", "arm": "off"},
	}

	rc, err := c.Resolve()
	require.NoError(t, err)
	assert.Equal(t, llvm.Version{Major: 9}, rc.MinVersion)
	assert.Equal(t, llvm.Version{Major: 14, Minor: 1}, rc.SoftMaxVersion)
	assert.Equal(t, resolve.ForceOn, rc.Overrides["riscv"])
	assert.Equal(t, resolve.ForceOff, rc.Overrides["arm"])
	assert.True(t, rc.WithRTTI)
}

func TestResolveConversion_BadTargetState(t *testing.T) {
	c := &Config{MinVersion: "9.0", SoftMaxVersion: "14.0", Targets: map[string]string{"arm": "maybe"}}
	_, err := c.Resolve()
	assert.ErrorContains(t, err, "maybe")
}

func TestResolveConversion_BadVersion(t *testing.T) {
	c := &Config{MinVersion: "nine", SoftMaxVersion: "14.0"}
	_, err := c.Resolve()
	assert.ErrorContains(t, err, "minVersion")
}
