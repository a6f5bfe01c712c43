package filter_conf

import (
	"fmt"
	"strings"

	graph_desc "filter-box/pkg/graph-desc"
	"filter-box/pkg/media"

	"github.com/pkg/errors"
)

// configureOutputFilter Build the node chain between the graph's last user node
// and the sink bound to ofilter's output stream
func (r *Registry) configureOutputFilter(fg *FilterGraph, ofilter *OutputFilter, out *graph_desc.InOut) error {
	ofilter.Name = describeLink(out, false)

	switch out.Node.PadType(out.Pad, false) {
	case media.TypeVideo:
		return r.configureOutputVideoFilter(fg, ofilter, out)
	case media.TypeAudio:
		return r.configureOutputAudioFilter(fg, ofilter, out)
	default:
		return Fatalf("output pad %d of filter %s has an unsupported media type", out.Pad, out.Node.Name())
	}
}

// Fixed insertion order: scale, pixel format, frame rate, trim, sink. Each node
// assumes the format and rate established by the one before it
func (r *Registry) configureOutputVideoFilter(fg *FilterGraph, ofilter *OutputFilter, out *graph_desc.InOut) error {
	ost := ofilter.Stream
	g := fg.graph
	cur := chainCursor{node: out.Node, pad: out.Pad}

	sink, err := g.CreateFilter("buffersink", fmt.Sprintf("output stream %d:%d", ost.FileIndex, ost.Index), "")
	if err != nil {
		return err
	}

	if ost.Width != 0 || ost.Height != 0 {
		args := fmt.Sprintf("%d:%d:0x%X", ost.Width, ost.Height, ost.SwsFlags)
		name := fmt.Sprintf("scaler for output stream %d:%d", ost.FileIndex, ost.Index)
		scale, err := g.CreateFilter("scale", name, args)
		if err != nil {
			return err
		}
		if err := g.Link(cur.node, cur.pad, scale, 0); err != nil {
			return err
		}
		cur = chainCursor{node: scale, pad: 0}
	}

	if pixFmts := choosePixelFormats(ost); pixFmts != "" && !pixelFormatSatisfied(fg, pixFmts) {
		name := fmt.Sprintf("pixel format for output stream %d:%d", ost.FileIndex, ost.Index)
		format, err := g.CreateFilter("format", name, pixFmts)
		if err != nil {
			return err
		}
		if err := g.Link(cur.node, cur.pad, format, 0); err != nil {
			return err
		}
		cur = chainCursor{node: format, pad: 0}
	}

	if !ost.FrameRate.IsZero() {
		args := fmt.Sprintf("fps=%d/%d", ost.FrameRate.Num, ost.FrameRate.Den)
		name := fmt.Sprintf("fps for output stream %d:%d", ost.FileIndex, ost.Index)
		fps, err := g.CreateFilter("fps", name, args)
		if err != nil {
			return err
		}
		if err := g.Link(cur.node, cur.pad, fps, 0); err != nil {
			return err
		}
		cur = chainCursor{node: fps, pad: 0}
	}

	cur, err = insertTrim(r, ost, g, cur)
	if err != nil {
		return err
	}

	if err := g.Link(cur.node, cur.pad, sink, 0); err != nil {
		return err
	}
	ofilter.Filter = sink
	return nil
}

func (r *Registry) configureOutputAudioFilter(fg *FilterGraph, ofilter *OutputFilter, out *graph_desc.InOut) error {
	ost := ofilter.Stream
	g := fg.graph
	cur := chainCursor{node: out.Node, pad: out.Pad}

	sink, err := g.CreateFilter("abuffersink", fmt.Sprintf("output stream %d:%d", ost.FileIndex, ost.Index), "")
	if err != nil {
		return err
	}

	if ost.Channels != 0 && ost.ChannelLayout == 0 {
		ost.ChannelLayout = media.DefaultChannelLayout(ost.Channels)
	}

	sampleFmts := chooseSampleFormats(ost)
	sampleRates := chooseSampleRates(ost)
	channelLayouts := chooseChannelLayouts(ost)
	if sampleFmts != "" || sampleRates != "" || channelLayouts != "" {
		clauses := make([]string, 0, 3)
		if sampleFmts != "" {
			clauses = append(clauses, "sample_fmts="+sampleFmts)
		}
		if sampleRates != "" {
			clauses = append(clauses, "sample_rates="+sampleRates)
		}
		if channelLayouts != "" {
			clauses = append(clauses, "channel_layouts="+channelLayouts)
		}

		name := fmt.Sprintf("audio format for output stream %d:%d", ost.FileIndex, ost.Index)
		format, err := g.CreateFilter("aformat", name, strings.Join(clauses, ":"))
		if err != nil {
			return errors.Wrap(err, "could not create the aformat filter")
		}
		if err := g.Link(cur.node, cur.pad, format, 0); err != nil {
			return err
		}
		cur = chainCursor{node: format, pad: 0}
	}

	cur, err = insertTrim(r, ost, g, cur)
	if err != nil {
		return err
	}

	if err := g.Link(cur.node, cur.pad, sink, 0); err != nil {
		return err
	}
	ofilter.Filter = sink
	return nil
}

// pixelFormatSatisfied A pixel format constraint needs no node when it names a
// single format and the graph's sole input already decodes to it. Constraint
// lists still go through a format node, the choice is the engine's then
func pixelFormatSatisfied(fg *FilterGraph, pixFmts string) bool {
	if strings.ContainsRune(pixFmts, '|') {
		return false
	}
	if len(fg.Inputs) != 1 || fg.Inputs[0].Stream == nil {
		return false
	}
	return string(fg.Inputs[0].Stream.PixelFormat) == pixFmts
}

// describeLink Synthesize the display name of an endpoint: the filter type,
// qualified by the pad name when the node has several pads on that side
func describeLink(io *graph_desc.InOut, input bool) string {
	pads := io.Node.NumOutputs()
	if input {
		pads = io.Node.NumInputs()
	}
	if pads > 1 {
		return fmt.Sprintf("%s:%s", io.Node.FilterType(), io.Node.PadName(io.Pad, input))
	}
	return io.Node.FilterType()
}
