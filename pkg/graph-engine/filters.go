package graph_engine

import "filter-box/pkg/media"

// FilterType Static description of a filter kind: pad counts and the media
// type flowing through them
type FilterType struct {
	NumInputs  int
	NumOutputs int
	Media      media.Type
}

// Built-in filter table. Pad counts are fixed per type; filters with an
// argument-dependent pad count are not modeled here.
var builtins = map[string]FilterType{
	// Sources and sinks
	"buffer":      {0, 1, media.TypeVideo},
	"buffersink":  {1, 0, media.TypeVideo},
	"abuffer":     {0, 1, media.TypeAudio},
	"abuffersink": {1, 0, media.TypeAudio},

	// Video
	"null":      {1, 1, media.TypeVideo},
	"scale":     {1, 1, media.TypeVideo},
	"format":    {1, 1, media.TypeVideo},
	"fps":       {1, 1, media.TypeVideo},
	"trim":      {1, 1, media.TypeVideo},
	"setpts":    {1, 1, media.TypeVideo},
	"crop":      {1, 1, media.TypeVideo},
	"pad":       {1, 1, media.TypeVideo},
	"hflip":     {1, 1, media.TypeVideo},
	"vflip":     {1, 1, media.TypeVideo},
	"transpose": {1, 1, media.TypeVideo},
	"yadif":     {1, 1, media.TypeVideo},
	"overlay":   {2, 1, media.TypeVideo},
	"split":     {1, 2, media.TypeVideo},

	// Audio
	"anull":             {1, 1, media.TypeAudio},
	"aformat":           {1, 1, media.TypeAudio},
	"atrim":             {1, 1, media.TypeAudio},
	"asetpts":           {1, 1, media.TypeAudio},
	"aresample":         {1, 1, media.TypeAudio},
	"volume":            {1, 1, media.TypeAudio},
	"asyncts":           {1, 1, media.TypeAudio},
	"loudnorm":          {1, 1, media.TypeAudio},
	"dynaudnorm":        {1, 1, media.TypeAudio},
	"speechnorm":        {1, 1, media.TypeAudio},
	"amix":              {2, 1, media.TypeAudio},
	"sidechaincompress": {2, 1, media.TypeAudio},
	"asplit":            {1, 2, media.TypeAudio},
}

// LookupFilter Resolve a filter type by name
func LookupFilter(name string) (FilterType, bool) {
	ft, ok := builtins[name]
	return ft, ok
}

// RegisterFilter Extend the filter table, mostly useful for tests exercising
// engine failure paths
func RegisterFilter(name string, ft FilterType) {
	builtins[name] = ft
}
