package texutil

import "github.com/maxartz15/MA-Utils/enumflag"

// ChannelMask selects color channels for per-channel transforms.
type ChannelMask uint8

const (
	ChannelRed ChannelMask = 1 << iota
	ChannelGreen
	ChannelBlue
	ChannelAlpha

	ChannelRGB  = ChannelRed | ChannelGreen | ChannelBlue
	ChannelRGBA = ChannelRGB | ChannelAlpha
)

var channelNames = map[string]ChannelMask{
	"red":   ChannelRed,
	"green": ChannelGreen,
	"blue":  ChannelBlue,
	"alpha": ChannelAlpha,
	"r":     ChannelRed,
	"g":     ChannelGreen,
	"b":     ChannelBlue,
	"a":     ChannelAlpha,
	"rgb":   ChannelRGB,
	"rgba":  ChannelRGBA,
}

var channelCanonical = map[string]ChannelMask{
	"red":   ChannelRed,
	"green": ChannelGreen,
	"blue":  ChannelBlue,
	"alpha": ChannelAlpha,
}

// Has reports whether all channels of c are selected.
func (m ChannelMask) Has(c ChannelMask) bool {
	return enumflag.Has(m, c)
}

// With returns m with the channels of c added.
func (m ChannelMask) With(c ChannelMask) ChannelMask {
	return enumflag.Add(m, c)
}

// Without returns m with the channels of c removed.
func (m ChannelMask) Without(c ChannelMask) ChannelMask {
	return enumflag.Remove(m, c)
}

func (m ChannelMask) String() string {
	if m == 0 {
		return "none"
	}
	return enumflag.Format(m, channelCanonical)
}

// ParseChannelMask parses names such as "red|alpha" or "RGB".
func ParseChannelMask(s string) (ChannelMask, error) {
	return enumflag.Parse(s, channelNames)
}
