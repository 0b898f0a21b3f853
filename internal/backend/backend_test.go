package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSupportedBackends(t *testing.T) {
	assert.Equal(t,
		[]string{"compositor", "ffmpeg", "glvideomixer", "vacompositor"},
		GetSupportedBackends(),
	)
}

func TestGet(t *testing.T) {
	tests := []struct {
		name         string
		element      string
		supportsCrop bool
	}{
		{name: "ffmpeg", element: "overlay", supportsCrop: true},
		{name: "glvideomixer", element: "glvideomixer", supportsCrop: true},
		{name: "compositor", element: "compositor", supportsCrop: false},
		{name: "vacompositor", element: "vacompositor", supportsCrop: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Get(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, b.GetName())
			assert.Equal(t, tt.element, b.GetMixerElement())
			assert.Equal(t, tt.supportsCrop, b.SupportsCrop())
			assert.NotEmpty(t, b.GetDescription())
		})
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("d3d11compositor")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownBackend)
	assert.Contains(t, err.Error(), "d3d11compositor")
}
