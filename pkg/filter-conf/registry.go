package filter_conf

import (
	"strconv"
	"strings"

	graph_engine "filter-box/pkg/graph-engine"
	"filter-box/pkg/media"
)

// DefaultAudioVolume Unity gain for the legacy fixed-volume knob
const DefaultAudioVolume = 256

// Options Legacy global knobs consumed read-only, owned by the surrounding
// option layer
type Options struct {
	// AudioSyncMethod Drift compensation level, 0 disables the deprecated
	// asyncts insertion
	AudioSyncMethod int
	// AudioDriftThreshold Minimum drift, in seconds, before compensation kicks in
	AudioDriftThreshold float64
	// AudioVolume Fixed volume scalar on a 256 == 1.0 scale
	AudioVolume int
}

// SpecifierMatcher External predicate resolving stream specifier text against
// a stream. The specifier syntax itself is not interpreted by this package
type SpecifierMatcher func(ist *media.InputStream, spec string) bool

// Registry Explicit configuration context replacing process-wide state: the
// known input files and streams, the output files, every filter graph of the
// job, the legacy audio options and the external collaborators
type Registry struct {
	InputFiles   []*media.InputFile
	InputStreams []*media.InputStream
	OutputFiles  []*media.OutputFile
	Graphs       []*FilterGraph

	Opts Options

	// Matches Stream specifier predicate, replaceable by the host program
	Matches SpecifierMatcher
	// NewGraph Executable graph allocator, replaceable for testing
	NewGraph func() graph_engine.Graph
}

// NewRegistry Build a registry with the in-memory engine and the built-in
// specifier matcher
func NewRegistry(opts Options) *Registry {
	if opts.AudioVolume == 0 {
		opts.AudioVolume = DefaultAudioVolume
	}
	return &Registry{
		Opts:     opts,
		Matches:  MatchSpecifier,
		NewGraph: func() graph_engine.Graph { return graph_engine.NewGraph() },
	}
}

// AddInputFile Register an input file and its streams
func (r *Registry) AddInputFile(f *media.InputFile) {
	f.Index = len(r.InputFiles)
	r.InputFiles = append(r.InputFiles, f)
	for i, st := range f.Streams {
		st.FileIndex = f.Index
		st.Index = i
		r.InputStreams = append(r.InputStreams, st)
	}
}

// AddOutputFile Register an output file
func (r *Registry) AddOutputFile(f *media.OutputFile) {
	f.Index = len(r.OutputFiles)
	r.OutputFiles = append(r.OutputFiles, f)
}

// NewSimpleFilterGraph Create an auto-generated single input/output graph
// wiring ist straight to ost. The per-stream filter spec of ost becomes the
// graph description at Configure time
func (r *Registry) NewSimpleFilterGraph(ist *media.InputStream, ost *media.OutputStream) *FilterGraph {
	fg := &FilterGraph{Index: len(r.Graphs)}

	ofilter := &OutputFilter{Graph: fg, Stream: ost}
	fg.Outputs = append(fg.Outputs, ofilter)
	ost.Filter = &media.FilterRef{Graph: fg.Index, Index: 0}

	r.addInputFilter(fg, ist)

	r.Graphs = append(r.Graphs, fg)
	return fg
}

// NewFilterGraph Create a graph for an explicit textual description. Inputs are
// bound and outputs possibly deferred on the first Configure pass
func (r *Registry) NewFilterGraph(desc string) *FilterGraph {
	fg := &FilterGraph{Index: len(r.Graphs), GraphDesc: desc}
	r.Graphs = append(r.Graphs, fg)
	return fg
}

// addInputFilter Append a new input endpoint bound to ist, registering the
// endpoint on the stream's own consumer list as well
func (r *Registry) addInputFilter(fg *FilterGraph, ist *media.InputStream) *InputFilter {
	ifilter := &InputFilter{Graph: fg, Stream: ist}
	fg.Inputs = append(fg.Inputs, ifilter)
	ist.FilterRefs = append(ist.FilterRefs, media.FilterRef{Graph: fg.Index, Index: len(fg.Inputs) - 1})
	return ifilter
}

// MatchSpecifier Built-in predicate covering the common specifier forms: empty
// matches anything, "v"/"a" match by media type, a bare number matches the
// stream index, "v:N"/"a:N" combine both. Host programs with a richer
// specifier syntax install their own SpecifierMatcher
func MatchSpecifier(ist *media.InputStream, spec string) bool {
	if spec == "" {
		return true
	}
	head, rest := spec, ""
	if idx := strings.IndexByte(spec, ':'); idx >= 0 {
		head, rest = spec[:idx], spec[idx+1:]
	}
	switch head {
	case "v":
		return ist.Type == media.TypeVideo && MatchSpecifier(ist, rest)
	case "a":
		return ist.Type == media.TypeAudio && MatchSpecifier(ist, rest)
	}
	if n, err := strconv.Atoi(head); err == nil {
		return ist.Index == n
	}
	return false
}
