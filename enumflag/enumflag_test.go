package enumflag

import (
	"errors"
	"testing"
)

type channel uint8

const (
	red channel = 1 << iota
	green
	blue
	alpha
)

var channelNames = map[string]channel{
	"red":   red,
	"green": green,
	"blue":  blue,
	"alpha": alpha,
}

func TestHasAddRemove(t *testing.T) {
	v := Add(red, blue)
	if !Has(v, red) || !Has(v, blue) {
		t.Errorf("Add(red, blue) = %b, missing bits", v)
	}
	if Has(v, green) {
		t.Errorf("Has(%b, green) = true, want false", v)
	}
	if !Has(v, red|blue) {
		t.Errorf("Has(%b, red|blue) = false, want true", v)
	}
	if Has(v, red|green) {
		t.Errorf("Has(%b, red|green) = true, want false", v)
	}
	if !Any(v, red|green) {
		t.Errorf("Any(%b, red|green) = false, want true", v)
	}

	v = Remove(v, red)
	if v != blue {
		t.Errorf("Remove() = %b, want %b", v, blue)
	}
	if Remove(v, green) != blue {
		t.Error("removing an unset flag must not change the value")
	}
}

func TestIs(t *testing.T) {
	if !Is(green, green) {
		t.Error("Is(green, green) = false")
	}
	if Is(green|blue, green) {
		t.Error("Is(green|blue, green) = true")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want channel
	}{
		{"", 0},
		{"red", red},
		{"RED", red},
		{"Red|Blue", red | blue},
		{" green , alpha ", green | alpha},
		{"red+green+blue", red | green | blue},
		{"red||blue", red | blue},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in, channelNames)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %b, want %b", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("red|purple", channelNames)
	if !errors.Is(err, ErrUnknownName) {
		t.Errorf("Parse(unknown) error = %v, want ErrUnknownName", err)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	v := red | blue | alpha
	s := Format(v, channelNames)
	if s != "red|blue|alpha" {
		t.Errorf("Format() = %q, want %q", s, "red|blue|alpha")
	}
	back, err := Parse(s, channelNames)
	if err != nil {
		t.Fatal(err)
	}
	if back != v {
		t.Errorf("Parse(Format(v)) = %b, want %b", back, v)
	}
}

func TestNamesZero(t *testing.T) {
	names := map[string]channel{"none": 0, "red": red}
	if got := Format(channel(0), names); got != "none" {
		t.Errorf("Format(0) = %q, want %q", got, "none")
	}
	if got := Format(red, names); got != "red" {
		t.Errorf("Format(red) = %q, want %q", got, "red")
	}
}
