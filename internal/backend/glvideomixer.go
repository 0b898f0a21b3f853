package backend

import "github.com/ZacxDev/video-compare/pkg/types"

type GLVideoMixer struct{}

func init() {
	Register(&GLVideoMixer{})
}

func (b *GLVideoMixer) GetName() string {
	return string(types.MixerBackendGLVideoMixer)
}

func (b *GLVideoMixer) GetDescription() string {
	return "OpenGL mixer, crops on the mixer pads"
}

func (b *GLVideoMixer) GetMixerElement() string {
	return "glvideomixer"
}

func (b *GLVideoMixer) SupportsCrop() bool {
	return true
}
