// Package graph_engine :: Executable processing-graph primitives consumed by the
// filter configuration engine. The engine owns node allocation, pad-to-pad linking
// and final validation; it never touches frames itself.
package graph_engine

//go:generate mockgen -source engine.go -destination ../../internal/mock/mock-graph-engine/engine.go

import (
	"filter-box/pkg/media"

	"github.com/pkg/errors"
)

// Graph One executable processing graph. A graph is built once, finalized once,
// and replaced wholesale when its owner reconfigures
type Graph interface {
	// CreateFilter Allocate a named node of the given filter type, initialized
	// with an argument string
	CreateFilter(filterType, name, args string) (Node, error)
	// Link Connect an output pad of src to an input pad of dst
	Link(src Node, srcPad int, dst Node, dstPad int) error
	// SetScaleOpts Graph-wide default options for inserted scaling nodes
	SetScaleOpts(opts string)
	// SetResampleOpts Graph-wide default options for inserted resampling nodes
	SetResampleOpts(opts string)
	// Configure Validate the graph and freeze it. Every pad of every node must
	// be linked by then
	Configure() error
	// Render Collapse the graph into a filter_complex-style description string
	Render() string
}

// Node A single processing stage inside a Graph
type Node interface {
	Name() string
	FilterType() string
	Args() string
	// SetOption Set a single named parameter on an already allocated node
	SetOption(key, value string) error
	// Option Read back a parameter set with SetOption, empty when unset
	Option(key string) string
	NumInputs() int
	NumOutputs() int
	// PadType Media type carried by one pad. input selects the side
	PadType(pad int, input bool) media.Type
	// PadName Display name of one pad
	PadName(pad int, input bool) string
}

var (
	// ErrFilterNotFound The requested filter type is not known to the engine
	ErrFilterNotFound = errors.New("filter not found")
	// ErrInvalidLink A link request named a pad out of range or already taken
	ErrInvalidLink = errors.New("invalid link")
	// ErrGraphFrozen The graph was already finalized and cannot be mutated
	ErrGraphFrozen = errors.New("graph already configured")
)
