package filter_conf

import (
	"fmt"
	"strings"

	graph_desc "filter-box/pkg/graph-desc"
	"filter-box/pkg/media"
)

// bindInput Resolve a dangling parsed input endpoint to a concrete decoded
// stream. An explicit "fileIndex[:specifier]" label picks from the named file;
// an unlabeled endpoint takes the first still-discarded stream of the required
// type. Binding marks the stream as needed and decoding-required
func (r *Registry) bindInput(fg *FilterGraph, in *graph_desc.InOut) error {
	// TODO: support other filter types once the engine grows beyond A/V
	padType := in.Node.PadType(in.Pad, true)
	if padType != media.TypeVideo && padType != media.TypeAudio {
		return Fatalf("only video and audio filters are supported currently")
	}

	var ist *media.InputStream
	if in.Name != "" {
		fileIdx, spec := splitEndpointLabel(in.Name)
		if fileIdx < 0 || fileIdx >= len(r.InputFiles) {
			return Fatalf("invalid file index %d in filter graph description %s", fileIdx, fg.GraphDesc)
		}
		for _, st := range r.InputFiles[fileIdx].Streams {
			if st.Type != padType {
				continue
			}
			if r.Matches(st, spec) {
				ist = st
				break
			}
		}
		if ist == nil {
			return Fatalf("stream specifier '%s' in filter graph description %s matches no streams",
				spec, fg.GraphDesc)
		}
	} else {
		// First unused stream of the required type
		for _, st := range r.InputStreams {
			if st.Type == padType && st.Discard {
				ist = st
				break
			}
		}
		if ist == nil {
			return Fatalf("cannot find a matching stream for unlabeled input pad %d on filter %s",
				in.Pad, in.Node.Name())
		}
	}

	ist.Discard = false
	ist.DecodingNeeded = true
	r.addInputFilter(fg, ist)
	return nil
}

// splitEndpointLabel Split "fileIndex[:specifier]" into its parts. A label with
// no leading digits yields file index -1, rejected by the caller
func splitEndpointLabel(label string) (int, string) {
	n := 0
	for n < len(label) && label[n] >= '0' && label[n] <= '9' {
		n++
	}
	if n == 0 {
		return -1, label
	}
	fileIdx := 0
	for _, c := range label[:n] {
		fileIdx = fileIdx*10 + int(c-'0')
	}
	return fileIdx, strings.TrimPrefix(label[n:], ":")
}

// configureInputFilter Build the source chain feeding the first user node of
// the graph from ifilter's bound stream
func (r *Registry) configureInputFilter(fg *FilterGraph, ifilter *InputFilter, in *graph_desc.InOut) error {
	ifilter.Name = describeLink(in, true)

	switch in.Node.PadType(in.Pad, true) {
	case media.TypeVideo:
		return r.configureInputVideoFilter(fg, ifilter, in)
	case media.TypeAudio:
		return r.configureInputAudioFilter(fg, ifilter, in)
	default:
		return Fatalf("input pad %d of filter %s has an unsupported media type", in.Pad, in.Node.Name())
	}
}

func (r *Registry) configureInputVideoFilter(fg *FilterGraph, ifilter *InputFilter, in *graph_desc.InOut) error {
	ist := ifilter.Stream
	g := fg.graph
	first := chainCursor{node: in.Node, pad: in.Pad}

	// A forced output frame rate overrides the native time base
	tb := ist.TimeBase
	if !ist.FrameRate.IsZero() {
		tb = ist.FrameRate.Invert()
	}
	sar := ist.SampleAspectRatio
	if sar.IsZero() {
		sar = ist.CodecSampleAspectRatio
	}

	args := fmt.Sprintf("video_size=%dx%d:pix_fmt=%s:time_base=%d/%d:pixel_aspect=%d/%d",
		ist.Width, ist.Height, ist.PixelFormat, tb.Num, tb.Den, sar.Num, sar.Den)
	name := fmt.Sprintf("graph %d input from stream %d:%d", fg.Index, ist.FileIndex, ist.Index)
	src, err := g.CreateFilter("buffer", name, args)
	if err != nil {
		return err
	}

	if !ist.FrameRate.IsZero() {
		// Regenerate timestamps so they become strictly uniform at the
		// requested rate
		name = fmt.Sprintf("force CFR for input from stream %d:%d", ist.FileIndex, ist.Index)
		setpts, err := g.CreateFilter("setpts", name, "N")
		if err != nil {
			return err
		}
		if err := g.Link(setpts, 0, first.node, first.pad); err != nil {
			return err
		}
		first = chainCursor{node: setpts, pad: 0}
	}

	if err := g.Link(src, 0, first.node, first.pad); err != nil {
		return err
	}
	ifilter.Filter = src
	return nil
}

func (r *Registry) configureInputAudioFilter(fg *FilterGraph, ifilter *InputFilter, in *graph_desc.InOut) error {
	ist := ifilter.Stream
	g := fg.graph
	first := chainCursor{node: in.Node, pad: in.Pad}

	args := fmt.Sprintf("time_base=1/%d:sample_rate=%d:sample_fmt=%s:channel_layout=0x%x",
		ist.SampleRate, ist.SampleRate, ist.SampleFormat, uint64(ist.ChannelLayout))
	name := fmt.Sprintf("graph %d input from stream %d:%d", fg.Index, ist.FileIndex, ist.Index)
	src, err := g.CreateFilter("abuffer", name, args)
	if err != nil {
		return err
	}

	if r.Opts.AudioSyncMethod > 0 {
		log.Warn("-async has been deprecated. Use the asyncts audio filter instead.")

		args = ""
		if r.Opts.AudioSyncMethod > 1 {
			args = fmt.Sprintf("compensate=1:max_comp=%d:", r.Opts.AudioSyncMethod)
		}
		args += fmt.Sprintf("min_delta=%f", r.Opts.AudioDriftThreshold)

		name = fmt.Sprintf("graph %d audio sync for input stream %d:%d", fg.Index, ist.FileIndex, ist.Index)
		async, err := g.CreateFilter("asyncts", name, args)
		if err != nil {
			return err
		}
		if err := g.Link(async, 0, first.node, first.pad); err != nil {
			return err
		}
		first = chainCursor{node: async, pad: 0}
	}

	if r.Opts.AudioVolume != DefaultAudioVolume {
		log.Warn("-vol has been deprecated. Use the volume audio filter instead.")

		args = fmt.Sprintf("volume=%f", float64(r.Opts.AudioVolume)/256.0)
		name = fmt.Sprintf("graph %d volume for input stream %d:%d", fg.Index, ist.FileIndex, ist.Index)
		volume, err := g.CreateFilter("volume", name, args)
		if err != nil {
			return err
		}
		if err := g.Link(volume, 0, first.node, first.pad); err != nil {
			return err
		}
		first = chainCursor{node: volume, pad: 0}
	}

	if err := g.Link(src, 0, first.node, first.pad); err != nil {
		return err
	}
	ifilter.Filter = src
	return nil
}
