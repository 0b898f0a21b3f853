package types

type MixerBackend string

const (
	MixerBackendFFmpeg       MixerBackend = "ffmpeg"
	MixerBackendGLVideoMixer MixerBackend = "glvideomixer"
	MixerBackendCompositor   MixerBackend = "compositor"
	MixerBackendVACompositor MixerBackend = "vacompositor"
)

type ViewMode string

const (
	ViewModeSplit      ViewMode = "split"
	ViewModeSideBySide ViewMode = "sidebyside"
)
