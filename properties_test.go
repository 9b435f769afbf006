package texutil

import (
	"errors"
	"testing"

	"github.com/maxartz15/MA-Utils/enumflag"
)

func TestCopyProperties(t *testing.T) {
	src := newFilled(t, 1, 1, Red, WithProperties(Properties{
		Name: "rock", AlphaIsTransparency: true, Filter: FilterPoint, Wrap: WrapMirror,
	}))

	tests := []struct {
		which PropertyMask
		want  Properties
	}{
		{0, Properties{Name: "dst", Filter: FilterTrilinear, Wrap: WrapClamp}},
		{PropertyName, Properties{Name: "rock", Filter: FilterTrilinear, Wrap: WrapClamp}},
		{PropertyAlpha | PropertyWrap, Properties{Name: "dst", AlphaIsTransparency: true, Filter: FilterTrilinear, Wrap: WrapMirror}},
		{PropertyAll, src.Properties()},
	}
	for _, tt := range tests {
		dst := newFilled(t, 2, 2, Blue, WithProperties(Properties{Name: "dst", Filter: FilterTrilinear, Wrap: WrapClamp}))
		if got := CopyProperties(dst, src, tt.which); got != dst {
			t.Fatal("CopyProperties did not return dst")
		}
		if got := dst.Properties(); got != tt.want {
			t.Errorf("CopyProperties(%b) = %+v, want %+v", tt.which, got, tt.want)
		}
	}
}

func TestCopyPropertiesNil(t *testing.T) {
	if CopyProperties(nil, newFilled(t, 1, 1, Red), PropertyAll) != nil {
		t.Error("nil dst did not return nil")
	}
	dst := newFilled(t, 1, 1, Red, WithProperties(Properties{Name: "keep"}))
	if CopyProperties(dst, nil, PropertyAll).Properties().Name != "keep" {
		t.Error("nil src changed dst")
	}
}

func TestParsePropertyMask(t *testing.T) {
	tests := []struct {
		in   string
		want PropertyMask
	}{
		{"name", PropertyName},
		{"Name|WRAP", PropertyName | PropertyWrap},
		{"all", PropertyAll},
		{"alpha, filter", PropertyAlpha | PropertyFilter},
	}
	for _, tt := range tests {
		got, err := ParsePropertyMask(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParsePropertyMask(%q) = %b, %v; want %b", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParsePropertyMask("mipmaps"); !errors.Is(err, enumflag.ErrUnknownName) {
		t.Errorf("unknown name error = %v", err)
	}
}
