package texutil

// ImageOption configures an Image during creation.
//
// Example:
//
//	img, err := texutil.NewImage(256, 256, texutil.WithMipmaps())
type ImageOption func(*imageOptions)

type imageOptions struct {
	mipmaps bool
	props   Properties
}

func defaultImageOptions() imageOptions {
	return imageOptions{
		props: Properties{Filter: FilterBilinear, Wrap: WrapRepeat},
	}
}

func applyImageOptions(opts []ImageOption) imageOptions {
	o := defaultImageOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithMipmaps allocates a full mip chain down to 1x1.
func WithMipmaps() ImageOption {
	return func(o *imageOptions) {
		o.mipmaps = true
	}
}

// WithProperties sets the host metadata of the new image.
func WithProperties(p Properties) ImageOption {
	return func(o *imageOptions) {
		o.props = p
	}
}
