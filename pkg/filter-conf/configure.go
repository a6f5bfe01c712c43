package filter_conf

import (
	"fmt"
	"sort"
	"strings"

	graph_desc "filter-box/pkg/graph-desc"

	"github.com/pkg/errors"
)

// Configure Assemble the executable graph of fg. The previous graph handle, if
// any, is discarded and rebuilt from scratch; input and output bindings
// accumulated on earlier passes persist and are reused.
//
// On the first pass of a non-simple graph the dangling input endpoints are
// bound to streams. Outputs are configured immediately when the output/stream
// mapping is already known (simple graphs, or any later pass); otherwise each
// dangling output endpoint is wrapped into an unbound OutputFilter and the
// graph parks in StateOutputsPendingBinding until the caller supplies the
// mapping and re-invokes Configure
func (r *Registry) Configure(fg *FilterGraph) error {
	init := fg.graph == nil
	simple := fg.Simple()

	desc := fg.GraphDesc
	if simple {
		desc = fg.Outputs[0].Stream.FilterSpec
	}

	fg.graph = r.NewGraph()
	fg.state = StateUninitialized

	if simple {
		ost := fg.Outputs[0].Stream
		fg.graph.SetScaleOpts(fmt.Sprintf("flags=0x%X", ost.SwsFlags))
		if opts := joinOpts(ost.ResampleOpts); opts != "" {
			fg.graph.SetResampleOpts(opts)
		}
	}

	ins, outs, err := graph_desc.Parse(fg.graph, desc)
	if err != nil {
		return errors.Wrapf(err, "could not parse filter graph description '%s'", desc)
	}
	fg.state = StateParsed

	if simple && (len(ins) != 1 || len(outs) != 1) {
		return errors.Errorf("simple filter graph '%s' does not have exactly one input and output", desc)
	}

	if !simple && init {
		for _, in := range ins {
			if err := r.bindInput(fg, in); err != nil {
				return err
			}
		}
	}
	if len(ins) != len(fg.Inputs) {
		return Fatalf("graph %d has %d parsed inputs but %d bound input filters", fg.Index, len(ins), len(fg.Inputs))
	}
	for i, in := range ins {
		if err := r.configureInputFilter(fg, fg.Inputs[i], in); err != nil {
			return errors.Wrapf(err, "could not configure input %d of graph %d", i, fg.Index)
		}
	}
	fg.state = StateInputsBound

	if !init || simple {
		// The mappings between graph outputs and output streams are known, so
		// the setup can be finished
		if len(outs) != len(fg.Outputs) {
			return Fatalf("graph %d has %d parsed outputs but %d output filters", fg.Index, len(outs), len(fg.Outputs))
		}
		for i, out := range outs {
			if fg.Outputs[i].Stream == nil {
				return Fatalf("output %d of graph %d is not mapped to any output stream", i, fg.Index)
			}
			fg.Outputs[i].Pending = nil
			if err := r.configureOutputFilter(fg, fg.Outputs[i], out); err != nil {
				return errors.Wrapf(err, "could not configure output %d of graph %d", i, fg.Index)
			}
		}
		if err := fg.graph.Configure(); err != nil {
			return errors.Wrapf(err, "could not finalize graph %d", fg.Index)
		}
		fg.state = StateConfigured
	} else {
		// Wait until output mappings are processed by the caller
		for _, out := range outs {
			fg.Outputs = append(fg.Outputs, &OutputFilter{Graph: fg, Pending: out})
		}
		fg.state = StateOutputsPendingBinding
	}

	return nil
}

// joinOpts Flatten an option dictionary into "k=v:" clauses, sorted for a
// stable result
func joinOpts(opts map[string]string) string {
	if len(opts) == 0 {
		return ""
	}
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	clauses := make([]string, 0, len(keys))
	for _, k := range keys {
		clauses = append(clauses, fmt.Sprintf("%s=%s", k, opts[k]))
	}
	return strings.Join(clauses, ":")
}
