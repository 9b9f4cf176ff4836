package logger

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewWithConfig(t *testing.T) {
	l := NewWithConfig("stats", log.DebugLevel, false, false, log.LogfmtFormatter)
	assert.Equal(t, log.DebugLevel, l.GetLevel())
	assert.Equal(t, "stats", l.GetPrefix())
}

func TestDiscardIsQuiet(t *testing.T) {
	l := Discard()
	assert.Equal(t, log.FatalLevel, l.GetLevel())
	l.Debug("dropped")
	l.Warn("dropped")
}

func TestNewFollowsGlobalLevel(t *testing.T) {
	prev := log.GetLevel()
	defer log.SetLevel(prev)

	log.SetLevel(log.DebugLevel)
	l := New("ipc")
	assert.Equal(t, log.DebugLevel, l.GetLevel())
	assert.Equal(t, "ipc", l.GetPrefix())
}
