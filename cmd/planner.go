package main

import (
	"os"
	"strconv"

	filter_conf "filter-box/pkg/filter-conf"
	"filter-box/pkg/logger"
	"filter-box/pkg/media"

	"github.com/joho/godotenv"
)

var (
	// Global logger instance
	log = logger.Build()
)

const (
	// Env variables for the legacy option knobs
	AUDIO_VOLUME          = "AUDIO_VOLUME"
	AUDIO_SYNC_METHOD     = "AUDIO_SYNC_METHOD"
	AUDIO_DRIFT_THRESHOLD = "AUDIO_DRIFT_THRESHOLD"
	SWS_FLAGS             = "SWS_FLAGS"

	// Default values
	DefaultAudioDriftThreshold = 0.1
	DefaultSwsFlags            = 0x4
)

// Dry-run the graph configuration for a canned two-stream job: parse the
// description given as the first argument (a plain passthrough job when
// omitted), bind it against a demo input file, late-bind any deferred outputs
// and print the assembled graphs.
func main() {
	// Load a .env file if there is any
	_ = godotenv.Load()

	opts := filter_conf.Options{
		AudioSyncMethod:     envInt(AUDIO_SYNC_METHOD, 0),
		AudioDriftThreshold: envFloat(AUDIO_DRIFT_THRESHOLD, DefaultAudioDriftThreshold),
		AudioVolume:         envInt(AUDIO_VOLUME, filter_conf.DefaultAudioVolume),
	}
	reg := filter_conf.NewRegistry(opts)

	swsFlags := uint(envInt(SWS_FLAGS, DefaultSwsFlags))

	video := &media.InputStream{
		Type:        media.TypeVideo,
		Discard:     true,
		Width:       1280,
		Height:      720,
		PixelFormat: "yuv420p",
		TimeBase:    media.Rational{Num: 1, Den: 25},
	}
	audio := &media.InputStream{
		Type:          media.TypeAudio,
		Discard:       true,
		SampleRate:    48000,
		SampleFormat:  "fltp",
		ChannelLayout: media.LayoutStereo,
	}
	reg.AddInputFile(&media.InputFile{Streams: []*media.InputStream{video, audio}})
	reg.AddOutputFile(&media.OutputFile{RecordingTime: media.NoLimit})

	videoOut := &media.OutputStream{
		Type:     media.TypeVideo,
		SwsFlags: swsFlags,
		Encoder:  &media.Encoder{Name: "libx264", PixelFormats: []media.PixelFormat{"yuv420p", "yuv422p"}},
	}
	audioOut := &media.OutputStream{
		Index:   1,
		Type:    media.TypeAudio,
		Encoder: &media.Encoder{Name: "aac", SampleRates: []int{44100, 48000}, SampleFormats: []media.SampleFormat{"fltp"}},
	}

	if len(os.Args) > 1 {
		planComplex(reg, os.Args[1], videoOut, audioOut)
	} else {
		videoOut.FilterSpec = "null"
		audioOut.FilterSpec = "anull"
		planSimple(reg, video, videoOut)
		planSimple(reg, audio, audioOut)
	}
}

func planSimple(reg *filter_conf.Registry, ist *media.InputStream, ost *media.OutputStream) {
	ist.Discard = false
	ist.DecodingNeeded = true
	fg := reg.NewSimpleFilterGraph(ist, ost)
	if err := reg.Configure(fg); err != nil {
		fail(err)
	}
	log.Infof("graph %d (%s): %s", fg.Index, fg.State(), fg.Graph().Render())
}

func planComplex(reg *filter_conf.Registry, desc string, outs ...*media.OutputStream) {
	fg := reg.NewFilterGraph(desc)
	if err := reg.Configure(fg); err != nil {
		fail(err)
	}

	if fg.State() == filter_conf.StateOutputsPendingBinding {
		// Late-bind every deferred output to the first free stream of its type
		for _, ofilter := range fg.Outputs {
			if ofilter.Stream != nil {
				continue
			}
			for _, ost := range outs {
				if ost.Filter == nil && ost.Type == ofilter.PendingType() {
					ofilter.BindStream(ost)
					break
				}
			}
		}
		if err := reg.Configure(fg); err != nil {
			fail(err)
		}
	}
	log.Infof("graph %d (%s): %s", fg.Index, fg.State(), fg.Graph().Render())
}

func fail(err error) {
	if filter_conf.IsFatal(err) {
		log.Fatalf("fatal configuration error: %s", err)
	}
	log.Fatalf("could not configure filter graph: %s", err)
}

func envInt(name string, def int) int {
	if raw := os.Getenv(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
		log.Warnf(`invalid value "%s" for %s, using default`, raw, name)
	}
	return def
}

func envFloat(name string, def float64) float64 {
	if raw := os.Getenv(name); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
		log.Warnf(`invalid value "%s" for %s, using default`, raw, name)
	}
	return def
}
