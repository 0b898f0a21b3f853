package backend

import "github.com/ZacxDev/video-compare/pkg/types"

// Compositor is the software mixer. Its pads have no crop properties.
type Compositor struct{}

func init() {
	Register(&Compositor{})
}

func (b *Compositor) GetName() string {
	return string(types.MixerBackendCompositor)
}

func (b *Compositor) GetDescription() string {
	return "software compositor with separate videocrop elements"
}

func (b *Compositor) GetMixerElement() string {
	return "compositor"
}

func (b *Compositor) SupportsCrop() bool {
	return false
}
