package filter_conf

import (
	"testing"

	graph_engine "filter-box/pkg/graph-engine"
	"filter-box/pkg/media"

	"github.com/stretchr/testify/assert"
)

func videoInput() *media.InputStream {
	return &media.InputStream{
		Type:        media.TypeVideo,
		Discard:     true,
		Width:       1280,
		Height:      720,
		PixelFormat: "yuv420p",
		TimeBase:    media.Rational{Num: 1, Den: 25},
	}
}

func audioInput() *media.InputStream {
	return &media.InputStream{
		Type:          media.TypeAudio,
		Discard:       true,
		SampleRate:    48000,
		SampleFormat:  "fltp",
		ChannelLayout: media.LayoutStereo,
	}
}

// jobRegistry A registry with one input file carrying a video and an audio
// stream, and one unbounded output file
func jobRegistry(opts Options) (*Registry, *media.InputStream, *media.InputStream) {
	r := NewRegistry(opts)
	video := videoInput()
	audio := audioInput()
	r.AddInputFile(&media.InputFile{Streams: []*media.InputStream{video, audio}})
	r.AddOutputFile(&media.OutputFile{RecordingTime: media.NoLimit})
	return r, video, audio
}

func memGraph(t *testing.T, fg *FilterGraph) *graph_engine.MemGraph {
	g, ok := fg.Graph().(*graph_engine.MemGraph)
	assert.True(t, ok)
	return g
}

func nodesOfType(g *graph_engine.MemGraph, ftype string) []*graph_engine.MemNode {
	var nodes []*graph_engine.MemNode
	for _, n := range g.Nodes() {
		if n.FilterType() == ftype {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// 720p input, output requesting 640x480 with its pixel format fixed to one the
// input already decodes to: a single scale node, no format node, no fps node
func TestSimpleVideoGraphScaleOnly(t *testing.T) {
	r, video, _ := jobRegistry(Options{})
	video.Discard = false
	ost := &media.OutputStream{
		Type:        media.TypeVideo,
		Width:       640,
		Height:      480,
		PixelFormat: "yuv420p",
		Encoder:     &media.Encoder{PixelFormats: []media.PixelFormat{"yuv420p", "yuv422p"}},
		FilterSpec:  "null",
	}

	fg := r.NewSimpleFilterGraph(video, ost)
	assert.Nil(t, r.Configure(fg))
	assert.Equal(t, StateConfigured, fg.State())

	g := memGraph(t, fg)
	scales := nodesOfType(g, "scale")
	assert.Equal(t, 1, len(scales))
	assert.Equal(t, "640:480:0x0", scales[0].Args())
	assert.Empty(t, nodesOfType(g, "format"))
	assert.Empty(t, nodesOfType(g, "fps"))

	// The scale node sits right before the sink
	dst, _ := scales[0].Output(0)
	assert.Equal(t, "buffersink", dst.FilterType())
	assert.NotNil(t, fg.Inputs[0].Filter)
	assert.NotNil(t, fg.Outputs[0].Filter)
}

// An unfixed pixel format with a supported list goes through a format node
// carrying the whole list
func TestSimpleVideoGraphFormatList(t *testing.T) {
	r, video, _ := jobRegistry(Options{})
	video.Discard = false
	ost := &media.OutputStream{
		Type:       media.TypeVideo,
		Encoder:    &media.Encoder{PixelFormats: []media.PixelFormat{"yuv420p", "yuv422p"}},
		FilterSpec: "null",
	}

	fg := r.NewSimpleFilterGraph(video, ost)
	assert.Nil(t, r.Configure(fg))

	formats := nodesOfType(memGraph(t, fg), "format")
	assert.Equal(t, 1, len(formats))
	assert.Equal(t, "yuv420p|yuv422p", formats[0].Args())
}

func TestSimpleVideoGraphFps(t *testing.T) {
	r, video, _ := jobRegistry(Options{})
	video.Discard = false
	ost := &media.OutputStream{
		Type:       media.TypeVideo,
		FrameRate:  media.Rational{Num: 25, Den: 1},
		FilterSpec: "null",
	}

	fg := r.NewSimpleFilterGraph(video, ost)
	assert.Nil(t, r.Configure(fg))

	fps := nodesOfType(memGraph(t, fg), "fps")
	assert.Equal(t, 1, len(fps))
	assert.Equal(t, "fps=25/1", fps[0].Args())
}

// Encoder supporting two sample rates, everything else unconstrained: one
// combined aformat node with only the sample_rates clause
func TestSimpleAudioGraphRateClauseOnly(t *testing.T) {
	r, _, audio := jobRegistry(Options{})
	audio.Discard = false
	ost := &media.OutputStream{
		Type:       media.TypeAudio,
		Encoder:    &media.Encoder{SampleRates: []int{44100, 48000}},
		FilterSpec: "anull",
	}

	fg := r.NewSimpleFilterGraph(audio, ost)
	assert.Nil(t, r.Configure(fg))

	formats := nodesOfType(memGraph(t, fg), "aformat")
	assert.Equal(t, 1, len(formats))
	assert.Equal(t, "sample_rates=44100|48000", formats[0].Args())
}

// A channel count without a layout derives the default layout before
// negotiation
func TestSimpleAudioGraphDefaultLayout(t *testing.T) {
	r, _, audio := jobRegistry(Options{})
	audio.Discard = false
	ost := &media.OutputStream{
		Type:       media.TypeAudio,
		Channels:   2,
		FilterSpec: "anull",
	}

	fg := r.NewSimpleFilterGraph(audio, ost)
	assert.Nil(t, r.Configure(fg))

	assert.Equal(t, media.LayoutStereo, ost.ChannelLayout)
	formats := nodesOfType(memGraph(t, fg), "aformat")
	assert.Equal(t, 1, len(formats))
	assert.Equal(t, "channel_layouts=stereo", formats[0].Args())
}

// A recording window on the output file splices a trim node before the sink
func TestSimpleGraphTrimWindow(t *testing.T) {
	r, video, _ := jobRegistry(Options{})
	video.Discard = false
	r.OutputFiles[0].StartTime = 2_000_000
	ost := &media.OutputStream{Type: media.TypeVideo, FilterSpec: "null"}

	fg := r.NewSimpleFilterGraph(video, ost)
	assert.Nil(t, r.Configure(fg))

	trims := nodesOfType(memGraph(t, fg), "trim")
	assert.Equal(t, 1, len(trims))
	assert.Equal(t, "2", trims[0].Option("start"))
	assert.Equal(t, "", trims[0].Option("duration"))
	dst, _ := trims[0].Output(0)
	assert.Equal(t, "buffersink", dst.FilterType())
}

// A simple graph must parse to exactly one endpoint on each side
func TestSimpleGraphArityRejected(t *testing.T) {
	r, video, _ := jobRegistry(Options{})
	video.Discard = false
	ost := &media.OutputStream{Type: media.TypeVideo, FilterSpec: "split"}

	fg := r.NewSimpleFilterGraph(video, ost)
	err := r.Configure(fg)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "exactly one input and output")
	assert.False(t, IsFatal(err))
}

// A forced input frame rate turns into a setpts node regenerating uniform
// timestamps, and inverts into the source time base
func TestInputVideoForcedFrameRate(t *testing.T) {
	r, video, _ := jobRegistry(Options{})
	video.Discard = false
	video.FrameRate = media.Rational{Num: 30, Den: 1}
	ost := &media.OutputStream{Type: media.TypeVideo, FilterSpec: "null"}

	fg := r.NewSimpleFilterGraph(video, ost)
	assert.Nil(t, r.Configure(fg))

	g := memGraph(t, fg)
	setpts := nodesOfType(g, "setpts")
	assert.Equal(t, 1, len(setpts))
	assert.Equal(t, "N", setpts[0].Args())

	srcs := nodesOfType(g, "buffer")
	assert.Equal(t, 1, len(srcs))
	assert.Contains(t, srcs[0].Args(), "time_base=1/30")
	dst, _ := srcs[0].Output(0)
	assert.Equal(t, "setpts", dst.FilterType())
}

// The legacy sync and volume knobs splice their compatibility nodes between
// the source and the first user node
func TestInputAudioLegacyOptions(t *testing.T) {
	r, _, audio := jobRegistry(Options{
		AudioSyncMethod:     2,
		AudioDriftThreshold: 0.1,
		AudioVolume:         512,
	})
	audio.Discard = false
	ost := &media.OutputStream{Type: media.TypeAudio, FilterSpec: "anull"}

	fg := r.NewSimpleFilterGraph(audio, ost)
	assert.Nil(t, r.Configure(fg))

	g := memGraph(t, fg)
	asyncts := nodesOfType(g, "asyncts")
	assert.Equal(t, 1, len(asyncts))
	assert.Equal(t, "compensate=1:max_comp=2:min_delta=0.100000", asyncts[0].Args())

	volumes := nodesOfType(g, "volume")
	assert.Equal(t, 1, len(volumes))
	assert.Equal(t, "volume=2.000000", volumes[0].Args())

	// Source feeds the volume node, which feeds asyncts
	srcs := nodesOfType(g, "abuffer")
	assert.Equal(t, 1, len(srcs))
	dst, _ := srcs[0].Output(0)
	assert.Equal(t, "volume", dst.FilterType())
	dst, _ = volumes[0].Output(0)
	assert.Equal(t, "asyncts", dst.FilterType())
}

// An unlabeled endpoint takes the first still-discarded stream of its type and
// clears the discard flag; a second graph finds no stream left
func TestBindUnlabeledInput(t *testing.T) {
	r, video, _ := jobRegistry(Options{})
	assert.True(t, video.Discard)

	fg := r.NewFilterGraph("hflip[out]")
	assert.Nil(t, r.Configure(fg))
	assert.False(t, video.Discard)
	assert.True(t, video.DecodingNeeded)
	assert.True(t, fg.InGraph(video))
	assert.Equal(t, 1, len(video.FilterRefs))

	other := r.NewFilterGraph("vflip[out]")
	err := r.Configure(other)
	assert.NotNil(t, err)
	assert.True(t, IsFatal(err))
	assert.Contains(t, err.Error(), "unlabeled input pad")
}

func TestBindLabeledInput(t *testing.T) {
	r, video, audio := jobRegistry(Options{})

	fg := r.NewFilterGraph("[0:a]volume=volume=0.5[out]")
	assert.Nil(t, r.Configure(fg))
	assert.False(t, audio.Discard)
	assert.True(t, fg.InGraph(audio))
	assert.False(t, fg.InGraph(video))
	// The labeled pick leaves the video stream untouched
	assert.True(t, video.Discard)
}

func TestBindLabeledInputBadFileIndex(t *testing.T) {
	r, _, _ := jobRegistry(Options{})
	fg := r.NewFilterGraph("[4:v]hflip[out]")
	err := r.Configure(fg)
	assert.True(t, IsFatal(err))
	assert.Contains(t, err.Error(), "invalid file index 4")
}

func TestBindLabeledInputNoMatch(t *testing.T) {
	r, _, _ := jobRegistry(Options{})
	fg := r.NewFilterGraph("[0:7]hflip[out]")
	err := r.Configure(fg)
	assert.True(t, IsFatal(err))
	assert.Contains(t, err.Error(), "matches no streams")
}

// First pass of a multi-output graph parks in OutputsPendingBinding; supplying
// the stream mapping and re-invoking Configure finishes the setup
func TestTwoPhaseOutputBinding(t *testing.T) {
	r, _, _ := jobRegistry(Options{})
	fg := r.NewFilterGraph("[0:v]split[main][preview]")

	assert.Nil(t, r.Configure(fg))
	assert.Equal(t, StateOutputsPendingBinding, fg.State())
	assert.Equal(t, 2, len(fg.Outputs))
	for _, ofilter := range fg.Outputs {
		assert.Nil(t, ofilter.Stream)
		assert.Equal(t, media.TypeVideo, ofilter.PendingType())
	}
	assert.Equal(t, "main", fg.Outputs[0].PendingName())
	assert.Equal(t, "preview", fg.Outputs[1].PendingName())

	fg.Outputs[0].BindStream(&media.OutputStream{Type: media.TypeVideo})
	fg.Outputs[1].BindStream(&media.OutputStream{Type: media.TypeVideo, Index: 1})

	assert.Nil(t, r.Configure(fg))
	assert.Equal(t, StateConfigured, fg.State())
	for _, ofilter := range fg.Outputs {
		assert.Nil(t, ofilter.Pending)
		assert.NotNil(t, ofilter.Filter)
		assert.Equal(t, "buffersink", ofilter.Filter.FilterType())
	}
}

// Re-invoking Configure without binding the deferred outputs is an invariant
// violation
func TestTwoPhaseUnboundOutputFatal(t *testing.T) {
	r, _, _ := jobRegistry(Options{})
	fg := r.NewFilterGraph("[0:v]split[a][b]")
	assert.Nil(t, r.Configure(fg))

	err := r.Configure(fg)
	assert.True(t, IsFatal(err))
	assert.Contains(t, err.Error(), "not mapped")
}

// Every Configure pass rebuilds the executable graph from scratch while the
// bindings persist
func TestReconfigureRebuildsGraph(t *testing.T) {
	r, video, _ := jobRegistry(Options{})
	video.Discard = false
	ost := &media.OutputStream{Type: media.TypeVideo, FilterSpec: "null"}

	fg := r.NewSimpleFilterGraph(video, ost)
	assert.Nil(t, r.Configure(fg))
	first := fg.Graph()

	assert.Nil(t, r.Configure(fg))
	assert.NotSame(t, first, fg.Graph())
	assert.Equal(t, StateConfigured, fg.State())
	assert.Equal(t, 1, len(fg.Inputs))
	assert.Equal(t, 1, len(fg.Outputs))
}

// Simple graphs carry the scaler flags and resample options graph-wide
func TestSimpleGraphGlobalOpts(t *testing.T) {
	r, video, _ := jobRegistry(Options{})
	video.Discard = false
	ost := &media.OutputStream{
		Type:         media.TypeVideo,
		SwsFlags:     0x4,
		ResampleOpts: map[string]string{"dither_method": "triangular", "filter_size": "32"},
		FilterSpec:   "null",
	}

	fg := r.NewSimpleFilterGraph(video, ost)
	assert.Nil(t, r.Configure(fg))

	g := memGraph(t, fg)
	assert.Equal(t, "flags=0x4", g.ScaleOpts())
	assert.Equal(t, "dither_method=triangular:filter_size=32", g.ResampleOpts())
}
