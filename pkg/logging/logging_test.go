package logging

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log, err := New(Options{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.True(t, log.V(1).Enabled())

	log, err = New(Options{})
	require.NoError(t, err)
	assert.False(t, log.V(1).Enabled())
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestBindFlags(t *testing.T) {
	var o Options
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-log-level", "warn", "-log-format", "json"}))
	assert.Equal(t, "warn", o.Level)
	assert.Equal(t, "json", o.Format)
}
