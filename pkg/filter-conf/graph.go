// Package filter_conf :: Filter graph configuration engine. Resolves an
// under-specified textual graph description against the decoded input streams
// and the negotiated output streams of a transcoding job, synthesizing the
// conversion nodes needed to produce a fully linked executable graph.
package filter_conf

import (
	graph_desc "filter-box/pkg/graph-desc"
	graph_engine "filter-box/pkg/graph-engine"
	"filter-box/pkg/logger"
	"filter-box/pkg/media"
)

var (
	log = logger.Build()
)

// State Position of a graph in its configuration lifecycle
type State int

const (
	// StateUninitialized No executable graph built yet
	StateUninitialized State = iota
	// StateParsed Description parsed into dangling endpoint lists
	StateParsed
	// StateInputsBound Every input endpoint resolved and its source chain built
	StateInputsBound
	// StateOutputsPendingBinding Terminal until an external caller supplies the
	// output stream mapping and re-invokes Configure
	StateOutputsPendingBinding
	// StateConfigured Terminal, all nodes linked and the graph finalized
	StateConfigured
)

func (s State) String() string {
	switch s {
	case StateParsed:
		return "parsed"
	case StateInputsBound:
		return "inputs-bound"
	case StateOutputsPendingBinding:
		return "outputs-pending-binding"
	case StateConfigured:
		return "configured"
	default:
		return "uninitialized"
	}
}

// FilterGraph One user-requested processing chain. The executable graph handle
// is replaced wholesale on every Configure pass; the input/output filter
// bindings persist across passes
type FilterGraph struct {
	// Index Stable position in the owning registry
	Index int
	// GraphDesc Literal description, empty for an auto-generated simple graph
	GraphDesc string

	Inputs  []*InputFilter
	Outputs []*OutputFilter

	graph graph_engine.Graph
	state State
}

// Simple An auto-generated single input/output graph for one output stream
func (fg *FilterGraph) Simple() bool {
	return fg.GraphDesc == ""
}

// State Current lifecycle state
func (fg *FilterGraph) State() State {
	return fg.state
}

// Graph The underlying executable graph, nil before the first Configure
func (fg *FilterGraph) Graph() graph_engine.Graph {
	return fg.graph
}

// InGraph Report whether ist is currently bound as one of the graph's inputs.
// Used by collaborators to avoid double-binding a stream
func (fg *FilterGraph) InGraph(ist *media.InputStream) bool {
	for _, in := range fg.Inputs {
		if in.Stream == ist {
			return true
		}
	}
	return false
}

// InputFilter One graph input endpoint, bound to a decoded stream
type InputFilter struct {
	Graph  *FilterGraph
	Stream *media.InputStream
	// Name Synthesized display name of the endpoint
	Name string
	// Filter The source node once built
	Filter graph_engine.Node
}

// OutputFilter One graph output endpoint. Stream may stay nil between parse and
// late binding; Pending then holds the unresolved parsed endpoint
type OutputFilter struct {
	Graph  *FilterGraph
	Stream *media.OutputStream
	// Name Synthesized display name of the endpoint
	Name string
	// Filter The sink node once built
	Filter graph_engine.Node
	// Pending The dangling parsed endpoint held while binding is deferred
	Pending *graph_desc.InOut
}

// BindStream Late-bind a deferred output to a concrete stream. The caller must
// re-invoke Configure on the owning graph afterwards
func (of *OutputFilter) BindStream(ost *media.OutputStream) {
	of.Stream = ost
	ost.Filter = &media.FilterRef{Graph: of.Graph.Index, Index: outputIndex(of)}
}

// PendingType Media type of the held unresolved endpoint
func (of *OutputFilter) PendingType() media.Type {
	if of.Pending == nil {
		return media.TypeUnknown
	}
	return of.Pending.Node.PadType(of.Pending.Pad, false)
}

// PendingName Label of the held unresolved endpoint
func (of *OutputFilter) PendingName() string {
	if of.Pending == nil {
		return ""
	}
	return of.Pending.Name
}

func outputIndex(of *OutputFilter) int {
	for i, o := range of.Graph.Outputs {
		if o == of {
			return i
		}
	}
	return -1
}
