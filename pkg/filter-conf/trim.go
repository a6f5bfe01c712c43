package filter_conf

import (
	"fmt"
	"strconv"

	graph_engine "filter-box/pkg/graph-engine"
	"filter-box/pkg/media"

	"github.com/pkg/errors"
)

// chainCursor The current tail of a node chain under construction
type chainCursor struct {
	node graph_engine.Node
	pad  int
}

// insertTrim Splice a time-bounding node before the sink of ost's chain when
// the owning output file has a recording window. No-op when neither a start
// offset nor a duration limit applies
func insertTrim(r *Registry, ost *media.OutputStream, g graph_engine.Graph, cur chainCursor) (chainCursor, error) {
	of := r.OutputFiles[ost.FileIndex]
	if of.RecordingTime == media.NoLimit && of.StartTime == 0 {
		return cur, nil
	}

	ftype := "trim"
	if ost.Type == media.TypeAudio {
		ftype = "atrim"
	}
	name := fmt.Sprintf("%s for output stream %d:%d", ftype, ost.FileIndex, ost.Index)
	node, err := g.CreateFilter(ftype, name, "")
	if err != nil {
		return cur, errors.Wrapf(err, "%s filter not present, cannot limit recording time", ftype)
	}

	if of.RecordingTime != media.NoLimit {
		err = node.SetOption("duration", formatSeconds(of.RecordingTime))
	}
	if err == nil && of.StartTime != 0 {
		err = node.SetOption("start", formatSeconds(of.StartTime))
	}
	if err != nil {
		return cur, errors.Wrapf(err, "error configuring the %s filter", ftype)
	}

	if err := g.Link(cur.node, cur.pad, node, 0); err != nil {
		return cur, err
	}
	return chainCursor{node: node, pad: 0}, nil
}

// formatSeconds Convert a microsecond count to a decimal seconds string
func formatSeconds(us int64) string {
	return strconv.FormatFloat(float64(us)/1e6, 'f', -1, 64)
}
