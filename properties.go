package texutil

import "github.com/maxartz15/MA-Utils/enumflag"

// FilterMode is the sampling filter the host uses for the image.
type FilterMode uint8

const (
	FilterPoint FilterMode = iota
	FilterBilinear
	FilterTrilinear
)

// WrapMode is how the host samples past the image edge.
type WrapMode uint8

const (
	WrapRepeat WrapMode = iota
	WrapClamp
	WrapMirror
)

// Properties is host metadata carried alongside the pixels.
// Transforms preserve it unless documented otherwise.
type Properties struct {
	Name string
	// AlphaIsTransparency marks the alpha channel as meaningful coverage.
	AlphaIsTransparency bool
	Filter              FilterMode
	Wrap                WrapMode
}

// PropertyMask selects fields for CopyProperties.
type PropertyMask uint8

const (
	PropertyName PropertyMask = 1 << iota
	PropertyAlpha
	PropertyFilter
	PropertyWrap

	PropertyAll = PropertyName | PropertyAlpha | PropertyFilter | PropertyWrap
)

var propertyNames = map[string]PropertyMask{
	"name":   PropertyName,
	"alpha":  PropertyAlpha,
	"filter": PropertyFilter,
	"wrap":   PropertyWrap,
	"all":    PropertyAll,
}

// ParsePropertyMask parses names such as "name|wrap".
func ParsePropertyMask(s string) (PropertyMask, error) {
	return enumflag.Parse(s, propertyNames)
}

// CopyProperties copies the fields selected by which from src to dst and
// returns dst.
func CopyProperties(dst, src *Image, which PropertyMask) *Image {
	if dst == nil || src == nil {
		return dst
	}
	p := dst.props
	if enumflag.Has(which, PropertyName) {
		p.Name = src.props.Name
	}
	if enumflag.Has(which, PropertyAlpha) {
		p.AlphaIsTransparency = src.props.AlphaIsTransparency
	}
	if enumflag.Has(which, PropertyFilter) {
		p.Filter = src.props.Filter
	}
	if enumflag.Has(which, PropertyWrap) {
		p.Wrap = src.props.Wrap
	}
	dst.props = p
	logOp("copy_properties", dst, "which", which)
	return dst
}
