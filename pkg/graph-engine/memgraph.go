package graph_engine

import (
	"fmt"
	"strconv"
	"strings"

	"filter-box/pkg/media"

	"github.com/pkg/errors"
)

// MemGraph In-memory Graph implementation. Nodes and links are plain structs;
// Configure only validates connectivity, execution is somebody else's job
type MemGraph struct {
	nodes        []*MemNode
	links        []*memLink
	scaleOpts    string
	resampleOpts string
	configured   bool
}

// NewGraph Build a new empty graph
func NewGraph() *MemGraph {
	return &MemGraph{}
}

type memLink struct {
	src    *MemNode
	srcPad int
	dst    *MemNode
	dstPad int
}

// MemNode A single node of a MemGraph
type MemNode struct {
	graph   *MemGraph
	name    string
	ftype   string
	spec    FilterType
	args    string
	optKeys []string
	opts    map[string]string
	inputs  []*memLink
	outputs []*memLink
}

func (g *MemGraph) CreateFilter(filterType, name, args string) (Node, error) {
	if g.configured {
		return nil, ErrGraphFrozen
	}
	spec, ok := LookupFilter(filterType)
	if !ok {
		return nil, errors.Wrap(ErrFilterNotFound, filterType)
	}
	n := &MemNode{
		graph:   g,
		name:    name,
		ftype:   filterType,
		spec:    spec,
		args:    args,
		opts:    map[string]string{},
		inputs:  make([]*memLink, spec.NumInputs),
		outputs: make([]*memLink, spec.NumOutputs),
	}
	g.nodes = append(g.nodes, n)
	return n, nil
}

func (g *MemGraph) Link(src Node, srcPad int, dst Node, dstPad int) error {
	if g.configured {
		return ErrGraphFrozen
	}
	s, ok := src.(*MemNode)
	if !ok || s.graph != g {
		return errors.Wrap(ErrInvalidLink, "source node does not belong to this graph")
	}
	d, ok := dst.(*MemNode)
	if !ok || d.graph != g {
		return errors.Wrap(ErrInvalidLink, "destination node does not belong to this graph")
	}
	if srcPad < 0 || srcPad >= len(s.outputs) {
		return errors.Wrapf(ErrInvalidLink, "no output pad %d on %s", srcPad, s.name)
	}
	if dstPad < 0 || dstPad >= len(d.inputs) {
		return errors.Wrapf(ErrInvalidLink, "no input pad %d on %s", dstPad, d.name)
	}
	if s.outputs[srcPad] != nil {
		return errors.Wrapf(ErrInvalidLink, "output pad %d of %s already linked", srcPad, s.name)
	}
	if d.inputs[dstPad] != nil {
		return errors.Wrapf(ErrInvalidLink, "input pad %d of %s already linked", dstPad, d.name)
	}
	if s.spec.Media != d.spec.Media {
		return errors.Wrapf(ErrInvalidLink, "media type mismatch between %s (%s) and %s (%s)",
			s.name, s.spec.Media, d.name, d.spec.Media)
	}
	l := &memLink{src: s, srcPad: srcPad, dst: d, dstPad: dstPad}
	s.outputs[srcPad] = l
	d.inputs[dstPad] = l
	g.links = append(g.links, l)
	return nil
}

func (g *MemGraph) SetScaleOpts(opts string)    { g.scaleOpts = opts }
func (g *MemGraph) SetResampleOpts(opts string) { g.resampleOpts = opts }

// ScaleOpts Graph-wide scaling options, readable for inspection
func (g *MemGraph) ScaleOpts() string { return g.scaleOpts }

// ResampleOpts Graph-wide resampling options
func (g *MemGraph) ResampleOpts() string { return g.resampleOpts }

func (g *MemGraph) Configure() error {
	for _, n := range g.nodes {
		for i, l := range n.inputs {
			if l == nil {
				return errors.Errorf("dangling input pad %d on %s", i, n.name)
			}
		}
		for i, l := range n.outputs {
			if l == nil {
				return errors.Errorf("dangling output pad %d on %s", i, n.name)
			}
		}
	}
	g.configured = true
	return nil
}

// Nodes All nodes in creation order
func (g *MemGraph) Nodes() []*MemNode { return g.nodes }

// NodeByName Find a node by its instance name, nil when absent
func (g *MemGraph) NodeByName(name string) *MemNode {
	for _, n := range g.nodes {
		if n.name == name {
			return n
		}
	}
	return nil
}

// Render Collapse the graph into a filter_complex-style string, one segment per
// node with synthetic link labels. Meant for logs and dry runs, the result is
// descriptive rather than executable
func (g *MemGraph) Render() string {
	labels := make(map[*memLink]string, len(g.links))
	for i, l := range g.links {
		labels[l] = fmt.Sprintf("L%d", i)
	}
	ss := strings.Builder{}
	for i, n := range g.nodes {
		if i > 0 {
			ss.WriteString(";")
		}
		for _, l := range n.inputs {
			ss.WriteString(fmt.Sprintf("[%s]", labels[l]))
		}
		ss.WriteString(n.ftype)
		if params := n.renderParams(); params != "" {
			ss.WriteString("=" + params)
		}
		for _, l := range n.outputs {
			ss.WriteString(fmt.Sprintf("[%s]", labels[l]))
		}
	}
	return ss.String()
}

func (n *MemNode) Name() string       { return n.name }
func (n *MemNode) FilterType() string { return n.ftype }
func (n *MemNode) Args() string       { return n.args }

func (n *MemNode) SetOption(key, value string) error {
	if n.graph.configured {
		return ErrGraphFrozen
	}
	if _, ok := n.opts[key]; !ok {
		n.optKeys = append(n.optKeys, key)
	}
	n.opts[key] = value
	return nil
}

func (n *MemNode) Option(key string) string { return n.opts[key] }

func (n *MemNode) NumInputs() int  { return len(n.inputs) }
func (n *MemNode) NumOutputs() int { return len(n.outputs) }

func (n *MemNode) PadType(pad int, input bool) media.Type {
	limit := len(n.outputs)
	if input {
		limit = len(n.inputs)
	}
	if pad < 0 || pad >= limit {
		return media.TypeUnknown
	}
	return n.spec.Media
}

func (n *MemNode) PadName(pad int, input bool) string {
	return strconv.Itoa(pad)
}

// Input The link feeding one input pad, nil while dangling
func (n *MemNode) Input(pad int) (src Node, srcPad int) {
	if pad < 0 || pad >= len(n.inputs) || n.inputs[pad] == nil {
		return nil, 0
	}
	return n.inputs[pad].src, n.inputs[pad].srcPad
}

// Output The link consuming one output pad, nil while dangling
func (n *MemNode) Output(pad int) (dst Node, dstPad int) {
	if pad < 0 || pad >= len(n.outputs) || n.outputs[pad] == nil {
		return nil, 0
	}
	return n.outputs[pad].dst, n.outputs[pad].dstPad
}

func (n *MemNode) renderParams() string {
	parts := make([]string, 0, 1+len(n.optKeys))
	if n.args != "" {
		parts = append(parts, n.args)
	}
	for _, k := range n.optKeys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, n.opts[k]))
	}
	return strings.Join(parts, ":")
}
