package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeProgram(t *testing.T, data string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "job.gcode")
	require.NoError(t, os.WriteFile(name, []byte(data), 0644))
	return name
}

func TestRun(t *testing.T) {
	name := writeProgram(t, "; job\nG21\nG90\nM3\nG1 X0 Y0 F600\nG1 X0 Y10 S0.5 F600\nM5\nG0 X0 Y0\n")

	out, err := execute(t, name)
	require.NoError(t, err)
	assert.Equal(t,
		"Total laser on length: 10.000 mm\nTotal laser on time: 0.500 s (0min 0s 500ms)\nLaser switches: 1\n",
		out,
	)

	out, err = execute(t, "--json", name)
	require.NoError(t, err)
	assert.JSONEq(t, `{"length_mm":10,"time_s":0.5,"switches":1}`, out)

	// flags from the previous run do not carry over
	out, err = execute(t, name)
	require.NoError(t, err)
	assert.Contains(t, out, "Laser switches: 1\n")
}

func TestRun_CountEveryOn(t *testing.T) {
	name := writeProgram(t, "M3\nM3\nM5\nM3\n")

	out, err := execute(t, "--json", "--count-every-on", name)
	require.NoError(t, err)
	assert.JSONEq(t, `{"length_mm":0,"time_s":0,"switches":3}`, out)

	out, err = execute(t, "--json", name)
	require.NoError(t, err)
	assert.JSONEq(t, `{"length_mm":0,"time_s":0,"switches":2}`, out)
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, writeProgram(t, "G21\nG\n"))
	assert.EqualError(t, err, `line 2: malformed command: "G"`)

	_, err = execute(t, filepath.Join(t.TempDir(), "missing.gcode"))
	assert.Error(t, err)

	_, err = execute(t)
	assert.Error(t, err)
}
