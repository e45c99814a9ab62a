// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"bytes"
	"strings"
	"testing"

	vec "github.com/facebookincubator/go-simplevector"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, script string, trace bool) (string, error) {
	t.Helper()
	var out bytes.Buffer
	in := newInterpreter(&out, trace)
	_, err := in.run(strings.NewReader(script))
	return out.String(), err
}

func TestRunScenario(t *testing.T) {
	out, err := runScript(t, `
# build [1 2 3 4]
push 1
push 2
push 3
push 4
print
insert 1 10
print
erase 0
print
at 2
`, false)
	require.NoError(t, err)
	assert.Equal(t, "[1 2 3 4]\n[1 10 2 3 4]\n[10 2 3 4]\n3\n", out)
}

func TestRunTrace(t *testing.T) {
	out, err := runScript(t, "reserve 2\npush 7\nresize 5\npop\nclear\n", true)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"reserve 2            size=0 capacity=2",
		"push 7               size=1 capacity=2",
		"resize 5             size=5 capacity=5",
		"pop                  size=4 capacity=5",
		"clear                size=0 capacity=5",
	}, "\n")+"\n", out)
}

func TestRunSet(t *testing.T) {
	out, err := runScript(t, "resize 3\nset 1 9\nprint\n", false)
	require.NoError(t, err)
	assert.Equal(t, "[0 9 0]\n", out)
}

func TestRunErrors(t *testing.T) {
	for script, msg := range map[string]string{
		"push 1\nat 10\n":  "line 2 (\"at 10\"): index 10 out of range for vector of size 1",
		"pop\n":            "line 1 (\"pop\"): vector is empty",
		"insert 2 5\n":     "line 1 (\"insert 2 5\"): index 2 out of range for vector of size 0",
		"erase 1\n":        "line 1 (\"erase 1\"): index 1 out of range for vector of size 0",
		"push\n":           "line 1 (\"push\"): expected 1 arguments, got 0",
		"frobnicate\n":     "line 1 (\"frobnicate\"): unknown operation \"frobnicate\"",
		"\n\nreserve -1\n": "line 3 (\"reserve -1\"): argument 1: strconv.ParseUint: parsing \"-1\": invalid syntax",
		"set 0 1\n":        "line 1 (\"set 0 1\"): index 0 out of range for vector of size 0",
		"clear now\n":      "line 1 (\"clear now\"): expected 0 arguments, got 1",
	} {
		_, err := runScript(t, script, false)
		assert.EqualError(t, err, msg)
	}

	_, err := runScript(t, "at 0\n", false)
	assert.ErrorIs(t, err, vec.ErrOutOfRange)
}

func TestGrowthTrace(t *testing.T) {
	pushes, inserts := growthTrace(6)
	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6}, pushes)
	assert.Equal(t, []uint{1, 2, 4, 4, 8, 8}, inserts)
	assert.Equal(t, 6, reallocations(pushes))
	assert.Equal(t, 4, reallocations(inserts))
}
