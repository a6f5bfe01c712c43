package filter_conf

import (
	"strconv"
	"strings"

	"filter-box/pkg/media"
)

// chooseFormats Build the constraint string for one encoder attribute. If the
// output stream already fixes the attribute, its canonical name wins; else the
// encoder's supported-value list is joined with '|'; an empty result means the
// attribute is unconstrained and no format node is needed. One algorithm,
// instantiated below for each of the four negotiated attributes
func chooseFormats[E comparable](fixed, none E, supported []E, name func(E) string) string {
	if fixed != none {
		return name(fixed)
	}
	if len(supported) == 0 {
		return ""
	}
	names := make([]string, 0, len(supported))
	for _, v := range supported {
		names = append(names, name(v))
	}
	return strings.Join(names, "|")
}

func choosePixelFormats(ost *media.OutputStream) string {
	var supported []media.PixelFormat
	if ost.Encoder != nil {
		supported = ost.Encoder.PixelFormats
	}
	return chooseFormats(ost.PixelFormat, media.PixelFormat(""), supported,
		func(p media.PixelFormat) string { return string(p) })
}

func chooseSampleFormats(ost *media.OutputStream) string {
	var supported []media.SampleFormat
	if ost.Encoder != nil {
		supported = ost.Encoder.SampleFormats
	}
	return chooseFormats(ost.SampleFormat, media.SampleFormat(""), supported,
		func(s media.SampleFormat) string { return string(s) })
}

func chooseSampleRates(ost *media.OutputStream) string {
	var supported []int
	if ost.Encoder != nil {
		supported = ost.Encoder.SampleRates
	}
	return chooseFormats(ost.SampleRate, 0, supported, strconv.Itoa)
}

func chooseChannelLayouts(ost *media.OutputStream) string {
	var supported []media.ChannelLayout
	if ost.Encoder != nil {
		supported = ost.Encoder.ChannelLayouts
	}
	return chooseFormats(ost.ChannelLayout, media.ChannelLayout(0), supported,
		media.ChannelLayout.Name)
}
