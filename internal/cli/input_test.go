package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/bastiangx/wordprob/pkg/corpus"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var batch = corpus.Batch{
	{"great", "food"},
	{"great", "food"},
	{"great", "service"},
	{"slow", "service"},
	{"great", "gravy"},
}

func TestSuggest(t *testing.T) {
	h := NewInputHandler(batch, nil, 10, false)

	entries, err := h.Suggest("great")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "food", entries[0].Key)
	assert.InDelta(t, 2.0/10.0, entries[0].Value, 1e-12)
	assert.Equal(t, "service", entries[1].Key)
	assert.Equal(t, "gravy", entries[2].Key)
}

func TestSuggestLetterFilterAndLimit(t *testing.T) {
	h := NewInputHandler(batch, nil, 1, false)

	entries, err := h.Suggest("great @s")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "service", entries[0].Key)
}

func TestSuggestRejectsSymbols(t *testing.T) {
	h := NewInputHandler(batch, nil, 10, false)
	_, err := h.Suggest("gr8!")
	assert.Error(t, err)

	h = NewInputHandler(batch, nil, 10, true)
	entries, err := h.Suggest("gr8!")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseLine(t *testing.T) {
	prefix, letters := parseLine("  the food @se ")
	assert.Equal(t, []string{"the", "food"}, prefix)
	assert.Equal(t, "se", letters)

	prefix, letters = parseLine("the @x food")
	assert.Equal(t, []string{"the", "@x", "food"}, prefix)
	assert.Empty(t, letters)
}

func TestStartConsumesInput(t *testing.T) {
	h := NewInputHandler(batch, nil, 5, false)
	require.NoError(t, h.Start(strings.NewReader("great\n\nslow")))
	assert.Equal(t, 2, h.requestCount)
}

func TestHandleInputShowsWordCounts(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	h := NewInputHandler(batch, nil, 10, false)
	h.handleInput("great")

	out := buf.String()
	assert.Contains(t, out, "seen: 2")
	assert.Contains(t, out, "seen: 1")
	assert.Equal(t, 1, h.requestCount)
}
