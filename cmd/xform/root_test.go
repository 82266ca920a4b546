// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/xform/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the CLI with stdin and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

const translationYAML = `
matrix:
  - [1, 0, 0, 1]
  - [0, 1, 0, 2]
  - [0, 0, 1, 3]
  - [0, 0, 0, 1]
`

func TestDecompose(t *testing.T) {
	out, err := run(t, translationYAML, "decompose", "--format", "json")
	require.NoError(t, err)

	var c componentsDoc
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, [3]float64{1, 2, 3}, c.Translation)
	assert.Equal(t, [3]float64{1, 1, 1}, c.Scale)
	assert.Equal(t, [4]float64{0, 0, 0, 1}, c.Perspective)
}

func TestComposeThenDecompose(t *testing.T) {
	out, err := run(t, "scale: [2, 3, 4]\nangles: [0.1, 0.2, 0.3]\ntranslation: [5, 6, 7]\n", "compose")
	require.NoError(t, err)

	var tf transform.Transform
	require.NoError(t, yaml.Unmarshal([]byte(out), &tf))
	assert.Equal(t, [3]float64{5, 6, 7}, tf.Translation())

	out, err = run(t, out, "decompose")
	require.NoError(t, err)
	var c componentsDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &c))
	assert.InDelta(t, 2.0, c.Scale[0], 1e-9)
	assert.InDelta(t, 0.3, c.Angles[2], 1e-9)
}

func TestCompose_RejectsUnknownKeys(t *testing.T) {
	_, err := run(t, "scale: [1, 1, 1]\nskew: [1, 2, 3]\n", "compose")
	require.Error(t, err)
}

func TestCompose_RejectsNonNumericEntries(t *testing.T) {
	for _, doc := range []string{
		"scale: [1, \"2\", 1]\n",
		"translation: [true, 0, 0]\n",
		"matrix:\n  - [1, 0, 0, \"1\"]\n  - [0, 1, 0, 0]\n  - [0, 0, 1, 0]\n  - [0, 0, 0, 1]\n",
	} {
		cmd := "compose"
		if strings.HasPrefix(doc, "matrix") {
			cmd = "invert"
		}
		_, err := run(t, doc, cmd)
		require.Error(t, err, doc)
	}
}

func TestInvert(t *testing.T) {
	out, err := run(t, translationYAML, "invert", "--format", "json")
	require.NoError(t, err)

	var tf transform.Transform
	require.NoError(t, json.Unmarshal([]byte(out), &tf))
	assert.Equal(t, [3]float64{-1, -2, -3}, tf.Translation())

	_, err = run(t, "matrix: [[0,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]]", "invert")
	require.ErrorIs(t, err, transform.ErrSingular)
}

func TestBasis(t *testing.T) {
	doc := `
from: {origin: [0, 0, 0], xaxis: [1, 0, 0], yaxis: [0, 1, 0]}
to:   {origin: [1, 2, 3], xaxis: [0, 1, 0], yaxis: [-1, 0, 0]}
`
	out, err := run(t, doc, "basis")
	require.NoError(t, err)
	var move transform.Transform
	require.NoError(t, yaml.Unmarshal([]byte(out), &move))
	assert.Equal(t, [3]float64{1, 2, 3}, move.Translation())

	out, err = run(t, doc, "basis", "--change-basis")
	require.NoError(t, err)
	var rebase transform.Transform
	require.NoError(t, yaml.Unmarshal([]byte(out), &rebase))

	inv, err := move.Inverted()
	require.NoError(t, err)
	assert.True(t, rebase.Equal(inv), "from world XY the two only differ by inversion")
}

func TestCheck(t *testing.T) {
	out, err := run(t, translationYAML, "check", "translation")
	require.NoError(t, err)
	assert.Equal(t, "ok: translation\n", out)

	_, err = run(t, translationYAML, "check", "scale")
	require.ErrorIs(t, err, transform.ErrInvalidTransform)

	_, err = run(t, translationYAML, "check", "warp")
	require.Error(t, err)
}

func TestFileFlagAndBadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pose.yaml")
	require.NoError(t, os.WriteFile(path, []byte(translationYAML), 0o600))

	out, err := run(t, "", "invert", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "matrix:")

	_, err = run(t, "", "invert")
	require.Error(t, err)

	_, err = run(t, "matrix: [[1, 2]]", "invert")
	require.ErrorIs(t, err, transform.ErrDimensionMismatch)

	_, err = run(t, translationYAML, "invert", "--format", "xml")
	require.Error(t, err)

	_, err = run(t, translationYAML, "invert", "--log-level", "loud")
	require.Error(t, err)
}
