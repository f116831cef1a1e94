package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want TransportMode
	}{
		{"http", ModeHTTP},
		{"SMB", ModeSMB},
		{" webdav ", ModeWebDAV},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMode_Unknown(t *testing.T) {
	_, err := ParseMode("ftp")
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.Contains(t, err.Error(), "ftp")
}

func TestAllModes_AreValid(t *testing.T) {
	for _, m := range AllModes() {
		assert.True(t, m.IsValid(), m)
	}
	assert.False(t, TransportMode("").IsValid())
}
