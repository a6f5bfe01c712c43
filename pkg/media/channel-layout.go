package media

import "fmt"

// ChannelLayout Speaker position bitmask, same bit assignment as the ffmpeg
// channel masks
type ChannelLayout uint64

const (
	ChFrontLeft          ChannelLayout = 0x1
	ChFrontRight         ChannelLayout = 0x2
	ChFrontCenter        ChannelLayout = 0x4
	ChLowFrequency       ChannelLayout = 0x8
	ChBackLeft           ChannelLayout = 0x10
	ChBackRight          ChannelLayout = 0x20
	ChBackCenter         ChannelLayout = 0x100
	ChSideLeft           ChannelLayout = 0x200
	ChSideRight          ChannelLayout = 0x400
)

const (
	LayoutMono     = ChFrontCenter
	LayoutStereo   = ChFrontLeft | ChFrontRight
	Layout2Point1  = LayoutStereo | ChLowFrequency
	LayoutSurround = LayoutStereo | ChFrontCenter
	Layout4Point0  = LayoutSurround | ChBackCenter
	Layout5Point0  = LayoutSurround | ChSideLeft | ChSideRight
	Layout5Point1  = Layout5Point0 | ChLowFrequency
	Layout7Point1  = Layout5Point1 | ChBackLeft | ChBackRight
)

var layoutNames = map[ChannelLayout]string{
	LayoutMono:     "mono",
	LayoutStereo:   "stereo",
	Layout2Point1:  "2.1",
	LayoutSurround: "3.0",
	Layout4Point0:  "4.0",
	Layout5Point0:  "5.0",
	Layout5Point1:  "5.1",
	Layout7Point1:  "7.1",
}

// Name Canonical layout name, falling back to the raw mask for exotic layouts
func (l ChannelLayout) Name() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return fmt.Sprintf("0x%x", uint64(l))
}

// DefaultChannelLayout Derive a layout from a bare channel count, used when an
// encoder specifies how many channels it wants but not where they sit
func DefaultChannelLayout(channels int) ChannelLayout {
	switch channels {
	case 1:
		return LayoutMono
	case 2:
		return LayoutStereo
	case 3:
		return Layout2Point1
	case 4:
		return Layout4Point0
	case 5:
		return Layout5Point0
	case 6:
		return Layout5Point1
	case 8:
		return Layout7Point1
	default:
		return 0
	}
}
