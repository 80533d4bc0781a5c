package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeImage(t *testing.T, code []byte) string {
	t.Helper()
	image := make([]byte, 0x0100+len(code))
	copy(image[0x0100:], code)
	path := filepath.Join(t.TempDir(), "prog.gb")
	require.NoError(t, os.WriteFile(path, image, 0o644))
	return path
}

func TestOpcodes(t *testing.T) {
	out, err := execute(t, "opcodes")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 513)
	assert.Contains(t, out, "20  JR NZ, r8        8/12")
	assert.Contains(t, out, "CB 46  BIT 0, (HL)      16")

	out, err = execute(t, "opcodes", "--cb")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 256)
}

func TestRun(t *testing.T) {
	path := writeImage(t, []byte{
		0x3E, 'A', 0xE0, 0x01, 0x3E, 0x81, 0xE0, 0x02, // send 'A'
		0x76, // HALT
	})
	save := filepath.Join(t.TempDir(), "prog.state")

	out, err := execute(t, "run", path, "--serial", "--save", save)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "A\n"), out)
	assert.Contains(t, out, "stopped:     halted")
	assert.Contains(t, out, "PC=0109")
	assert.FileExists(t, save)

	// resuming from the saved state halts straight away
	out, err = execute(t, "run", path, "--state", save)
	require.NoError(t, err)
	assert.Contains(t, out, "steps:       0")
}

func TestRun_Errors(t *testing.T) {
	path := writeImage(t, []byte{0xDD})

	_, err := execute(t, "run", path)
	assert.ErrorContains(t, err, "unknown opcode DD")

	_, err = execute(t, "run", path, "--entry", "nope")
	assert.ErrorContains(t, err, "invalid entry point")

	_, err = execute(t, "run", filepath.Join(t.TempDir(), "missing.gb"))
	assert.Error(t, err)

	out, err := execute(t, "run", path, "--entry", "0x0000", "--steps", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "stopped:     step limit")
}
