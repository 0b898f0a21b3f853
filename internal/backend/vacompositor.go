package backend

import "github.com/ZacxDev/video-compare/pkg/types"

type VACompositor struct{}

func init() {
	Register(&VACompositor{})
}

func (b *VACompositor) GetName() string {
	return string(types.MixerBackendVACompositor)
}

func (b *VACompositor) GetDescription() string {
	return "VA-API hardware compositor with separate videocrop elements"
}

func (b *VACompositor) GetMixerElement() string {
	return "vacompositor"
}

func (b *VACompositor) SupportsCrop() bool {
	return false
}
