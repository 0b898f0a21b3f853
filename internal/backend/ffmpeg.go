package backend

import "github.com/ZacxDev/video-compare/pkg/types"

type FFmpeg struct{}

func init() {
	Register(&FFmpeg{})
}

func (b *FFmpeg) GetName() string {
	return string(types.MixerBackendFFmpeg)
}

func (b *FFmpeg) GetDescription() string {
	return "ffmpeg filter graph (crop, scale, overlay)"
}

func (b *FFmpeg) GetMixerElement() string {
	return "overlay"
}

func (b *FFmpeg) SupportsCrop() bool {
	return true
}
