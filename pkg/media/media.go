// Package media :: Stream and file model shared by the filter graph configuration engine.
// Streams are owned by the surrounding transcoding program; the engine only reads them
// and flips the discard/decoding flags when a stream gets bound to a graph.
package media

import (
	"fmt"
	"math"
)

// Type of the payload carried by a stream or a filter pad
type Type int

const (
	TypeUnknown Type = iota
	TypeVideo
	TypeAudio
)

func (t Type) String() string {
	switch t {
	case TypeVideo:
		return "video"
	case TypeAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// Rational An exact fraction, used for time bases, frame rates and aspect ratios
type Rational struct {
	Num int
	Den int
}

func (r Rational) IsZero() bool {
	return r.Num == 0
}

// Invert Swap numerator and denominator. A frame rate inverted is a time base
func (r Rational) Invert() Rational {
	return Rational{Num: r.Den, Den: r.Num}
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// PixelFormat Canonical pixel format name ("yuv420p", ...). Empty means unset
type PixelFormat string

// SampleFormat Canonical sample format name ("fltp", "s16", ...). Empty means unset
type SampleFormat string

// NoLimit Recording time of an output file with no duration constraint
const NoLimit int64 = math.MaxInt64

// FilterRef Index-based back reference from a stream to a filter endpoint,
// as (graph index, endpoint index) into the graph registry
type FilterRef struct {
	Graph int
	Index int
}

// InputFile A demuxed input and the decoded streams it carries
type InputFile struct {
	Index   int
	Streams []*InputStream
}

// InputStream One decoded stream of an input file
type InputStream struct {
	FileIndex int
	Index     int
	Type      Type

	// Discard is set while no consumer asked for this stream
	Discard bool
	// DecodingNeeded is set once a filter graph feeds from this stream
	DecodingNeeded bool

	// Video properties
	Width       int
	Height      int
	PixelFormat PixelFormat
	TimeBase    Rational
	// FrameRate Forced constant output frame rate, zero when the native rate is kept
	FrameRate Rational
	// SampleAspectRatio Container-level value, preferred over the codec one
	SampleAspectRatio      Rational
	CodecSampleAspectRatio Rational

	// Audio properties
	SampleRate    int
	SampleFormat  SampleFormat
	ChannelLayout ChannelLayout

	// FilterRefs All graph endpoints consuming this stream. A stream may feed
	// more than one graph
	FilterRefs []FilterRef
}

// OutputFile Muxing target, carrying the recording window shared by its streams
type OutputFile struct {
	Index int
	// StartTime Recording start offset in microseconds
	StartTime int64
	// RecordingTime Recording duration in microseconds, NoLimit when unbounded
	RecordingTime int64
}

// Encoder Negotiated capability sets of the codec chosen for an output stream.
// A nil slice means the attribute is unconstrained
type Encoder struct {
	Name           string
	PixelFormats   []PixelFormat
	SampleFormats  []SampleFormat
	SampleRates    []int
	ChannelLayouts []ChannelLayout
}

// OutputStream One encoded stream of an output file
type OutputStream struct {
	FileIndex int
	Index     int
	Type      Type

	// Video settings, zero when left to the graph's native output
	Width       int
	Height      int
	PixelFormat PixelFormat
	FrameRate   Rational

	// Audio settings
	SampleRate    int
	SampleFormat  SampleFormat
	Channels      int
	ChannelLayout ChannelLayout

	// Encoder Chosen codec capabilities, nil while the codec is not negotiated
	Encoder *Encoder

	// SwsFlags Scaling algorithm flag set forwarded to inserted scale nodes
	SwsFlags uint
	// ResampleOpts Resampling options applied graph-wide on simple graphs
	ResampleOpts map[string]string

	// FilterSpec Per-stream filter chain used as the description of an
	// auto-generated simple graph ("null"/"anull" when nothing was requested)
	FilterSpec string

	// Filter Back reference to the graph output feeding this stream, set once
	// the stream is bound
	Filter *FilterRef
}
