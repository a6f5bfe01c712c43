// Package graph_desc :: Parser for the textual graph description mini-language.
// A description is a ';'-separated list of chains, a chain a ','-separated list
// of filters, a filter "name=args" with optional "[label]" pads on either side.
// Parsing instantiates every named filter into the target graph, links what it
// can, and hands back the dangling endpoints for the configuration engine to
// bind. Filter arguments are treated as opaque text.
package graph_desc

import (
	"fmt"
	"strings"

	graph_engine "filter-box/pkg/graph-engine"

	"github.com/pkg/errors"
)

// InOut One dangling endpoint of a parsed graph: an unconnected pad, with the
// label it carried in the description (empty when unlabeled)
type InOut struct {
	Name string
	Node graph_engine.Node
	Pad  int
}

type pending struct {
	io       *InOut
	consumed bool
}

func findOpen(list []*pending, label string) *pending {
	for _, p := range list {
		if !p.consumed && p.io.Name == label {
			return p
		}
	}
	return nil
}

// Parse Instantiate the description into g and return the dangling input and
// output endpoints in parse order. Labels are two-way: an input label links to
// an earlier open output of the same name, an output label links back to an
// earlier unmatched input
func Parse(g graph_engine.Graph, desc string) ([]*InOut, []*InOut, error) {
	var openIns, openOuts []*pending
	seq := 0

	for _, chain := range strings.Split(desc, ";") {
		var prev *InOut
		for _, seg := range strings.Split(chain, ",") {
			seg = strings.TrimSpace(seg)
			inLabels, rest, err := takeLabels(seg)
			if err != nil {
				return nil, nil, err
			}
			body := rest
			var outLabels []string
			if idx := strings.IndexByte(rest, '['); idx >= 0 {
				body = rest[:idx]
				outLabels, rest, err = takeLabels(rest[idx:])
				if err != nil {
					return nil, nil, err
				}
				if strings.TrimSpace(rest) != "" {
					return nil, nil, errors.Errorf("trailing garbage %q after output labels", rest)
				}
			}

			name, args := body, ""
			if idx := strings.IndexByte(body, '='); idx >= 0 {
				name, args = body[:idx], body[idx+1:]
			}
			name = strings.TrimSpace(name)
			if name == "" {
				return nil, nil, errors.Errorf("empty filter name in description %q", desc)
			}

			node, err := g.CreateFilter(name, fmt.Sprintf("Parsed_%s_%d", name, seq), args)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "error creating filter '%s'", name)
			}
			seq++

			// Input side: labels fill pads first, then the previous filter of
			// the chain takes the next free pad, the rest dangle unlabeled
			nextIn := 0
			for _, label := range inLabels {
				if nextIn >= node.NumInputs() {
					return nil, nil, errors.Errorf("too many input labels on filter %s", name)
				}
				if o := findOpen(openOuts, label); o != nil {
					if err := g.Link(o.io.Node, o.io.Pad, node, nextIn); err != nil {
						return nil, nil, err
					}
					o.consumed = true
				} else {
					openIns = append(openIns, &pending{io: &InOut{Name: label, Node: node, Pad: nextIn}})
				}
				nextIn++
			}
			if prev != nil {
				if nextIn >= node.NumInputs() {
					return nil, nil, errors.Errorf("no free input pad on filter %s to continue the chain", name)
				}
				if err := g.Link(prev.Node, prev.Pad, node, nextIn); err != nil {
					return nil, nil, err
				}
				nextIn++
			}
			for ; nextIn < node.NumInputs(); nextIn++ {
				openIns = append(openIns, &pending{io: &InOut{Node: node, Pad: nextIn}})
			}

			// Output side: labels first, the next free pad feeds the chain
			nextOut := 0
			for _, label := range outLabels {
				if nextOut >= node.NumOutputs() {
					return nil, nil, errors.Errorf("too many output labels on filter %s", name)
				}
				if i := findOpen(openIns, label); i != nil {
					if err := g.Link(node, nextOut, i.io.Node, i.io.Pad); err != nil {
						return nil, nil, err
					}
					i.consumed = true
				} else {
					openOuts = append(openOuts, &pending{io: &InOut{Name: label, Node: node, Pad: nextOut}})
				}
				nextOut++
			}
			prev = nil
			if nextOut < node.NumOutputs() {
				prev = &InOut{Node: node, Pad: nextOut}
				nextOut++
			}
			for ; nextOut < node.NumOutputs(); nextOut++ {
				openOuts = append(openOuts, &pending{io: &InOut{Node: node, Pad: nextOut}})
			}
		}
		if prev != nil {
			openOuts = append(openOuts, &pending{io: prev})
		}
	}

	var ins, outs []*InOut
	for _, p := range openIns {
		if !p.consumed {
			ins = append(ins, p.io)
		}
	}
	for _, p := range openOuts {
		if !p.consumed {
			outs = append(outs, p.io)
		}
	}
	return ins, outs, nil
}

// takeLabels Consume the leading "[label]" sequence of s
func takeLabels(s string) ([]string, string, error) {
	var labels []string
	for {
		s = strings.TrimSpace(s)
		if !strings.HasPrefix(s, "[") {
			return labels, s, nil
		}
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, "", errors.Errorf("unterminated label in %q", s)
		}
		labels = append(labels, strings.TrimSpace(s[1:end]))
		s = s[end+1:]
	}
}
