package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompterReadsTwoLines(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("120\n 2000 \n"), &out)

	tempo, duration, err := p.ReadTempoAndDuration()
	require.NoError(t, err)
	assert.Equal(t, 120, tempo)
	assert.Equal(t, 2000, duration)
	assert.Equal(t, promptTempo+promptDuration, out.String())
}

func TestPrompterLastLineWithoutNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("90\n500"), &bytes.Buffer{})

	tempo, duration, err := p.ReadTempoAndDuration()
	require.NoError(t, err)
	assert.Equal(t, 90, tempo)
	assert.Equal(t, 500, duration)
}

func TestPrompterNonNumeric(t *testing.T) {
	p := NewPrompter(strings.NewReader("fast\n"), &bytes.Buffer{})

	_, err := p.Int(promptTempo)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNotNumber))
}

func TestPrompterNoInput(t *testing.T) {
	p := NewPrompter(strings.NewReader("120\n"), &bytes.Buffer{})

	_, _, err := p.ReadTempoAndDuration()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration in ms")
}
