package filter_conf

import (
	"testing"

	mock_graph_engine "filter-box/internal/mock/mock-graph-engine"
	graph_engine "filter-box/pkg/graph-engine"
	"filter-box/pkg/media"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func trimSetup(t *testing.T, startTime, recordingTime int64) (*Registry, *media.OutputStream, *graph_engine.MemGraph, chainCursor) {
	r := NewRegistry(Options{})
	r.AddOutputFile(&media.OutputFile{StartTime: startTime, RecordingTime: recordingTime})
	ost := &media.OutputStream{Type: media.TypeVideo}
	g := graph_engine.NewGraph()
	src, err := g.CreateFilter("buffer", "src", "")
	assert.Nil(t, err)
	return r, ost, g, chainCursor{node: src, pad: 0}
}

// No recording window, no node
func TestInsertTrimNoWindow(t *testing.T) {
	r, ost, g, cur := trimSetup(t, 0, media.NoLimit)
	next, err := insertTrim(r, ost, g, cur)
	assert.Nil(t, err)
	assert.Equal(t, cur, next)
	assert.Equal(t, 1, len(g.Nodes()))
}

// Start offset only: start converted from microseconds to seconds, duration
// left unset
func TestInsertTrimStartOnly(t *testing.T) {
	r, ost, g, cur := trimSetup(t, 2_000_000, media.NoLimit)
	next, err := insertTrim(r, ost, g, cur)
	assert.Nil(t, err)
	assert.NotEqual(t, cur, next)

	trim := g.NodeByName("trim for output stream 0:0")
	assert.NotNil(t, trim)
	assert.Equal(t, "2", trim.Option("start"))
	assert.Equal(t, "", trim.Option("duration"))
}

func TestInsertTrimStartAndDuration(t *testing.T) {
	r, ost, g, cur := trimSetup(t, 1_500_000, 10_000_000)
	_, err := insertTrim(r, ost, g, cur)
	assert.Nil(t, err)

	trim := g.NodeByName("trim for output stream 0:0")
	assert.NotNil(t, trim)
	assert.Equal(t, "1.5", trim.Option("start"))
	assert.Equal(t, "10", trim.Option("duration"))
}

// Audio streams get the atrim variant
func TestInsertTrimAudioVariant(t *testing.T) {
	r := NewRegistry(Options{})
	r.AddOutputFile(&media.OutputFile{StartTime: 500_000, RecordingTime: media.NoLimit})
	ost := &media.OutputStream{Type: media.TypeAudio}
	g := graph_engine.NewGraph()
	src, err := g.CreateFilter("abuffer", "src", "")
	assert.Nil(t, err)

	_, err = insertTrim(r, ost, g, chainCursor{node: src, pad: 0})
	assert.Nil(t, err)
	assert.NotNil(t, g.NodeByName("atrim for output stream 0:0"))
}

// A missing trim filter type is a recoverable engine failure, not a fatal one
func TestInsertTrimFilterMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := NewRegistry(Options{})
	r.AddOutputFile(&media.OutputFile{StartTime: 2_000_000, RecordingTime: media.NoLimit})
	ost := &media.OutputStream{Type: media.TypeAudio}

	g := mock_graph_engine.NewMockGraph(ctrl)
	g.EXPECT().CreateFilter("atrim", gomock.Any(), "").Return(nil, graph_engine.ErrFilterNotFound)

	src := mock_graph_engine.NewMockNode(ctrl)
	_, err := insertTrim(r, ost, g, chainCursor{node: src, pad: 0})
	assert.NotNil(t, err)
	assert.True(t, errors.Is(err, graph_engine.ErrFilterNotFound))
	assert.False(t, IsFatal(err))
}

// Link failures from the engine propagate unchanged
func TestInsertTrimLinkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := NewRegistry(Options{})
	r.AddOutputFile(&media.OutputFile{StartTime: 2_000_000, RecordingTime: media.NoLimit})
	ost := &media.OutputStream{Type: media.TypeVideo}

	node := mock_graph_engine.NewMockNode(ctrl)
	node.EXPECT().SetOption("start", "2").Return(nil)
	src := mock_graph_engine.NewMockNode(ctrl)

	g := mock_graph_engine.NewMockGraph(ctrl)
	g.EXPECT().CreateFilter("trim", gomock.Any(), "").Return(node, nil)
	g.EXPECT().Link(src, 0, node, 0).Return(graph_engine.ErrInvalidLink)

	_, err := insertTrim(r, ost, g, chainCursor{node: src, pad: 0})
	assert.True(t, errors.Is(err, graph_engine.ErrInvalidLink))
}
