package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTempo(t *testing.T) {
	assert.False(t, ValidTempo(MIN_TEMPO))
	assert.False(t, ValidTempo(-20))
	assert.False(t, ValidTempo(MAX_TEMPO))
	assert.True(t, ValidTempo(1))
	assert.True(t, ValidTempo(120))
	assert.True(t, ValidTempo(MAX_TEMPO-1))
}

func TestConfigPath(t *testing.T) {
	t.Setenv(envConfigPath, "")
	t.Setenv("HOME", "/home/drummer")
	assert.Equal(t, filepath.Join(UserHomeDir(), configFileName), ConfigPath(""))

	t.Setenv(envConfigPath, "/etc/beatgen.json")
	assert.Equal(t, "/etc/beatgen.json", ConfigPath(""))
	assert.Equal(t, "/tmp/x.json", ConfigPath("/tmp/x.json"))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	assert.False(t, isTerminal(f))
}
