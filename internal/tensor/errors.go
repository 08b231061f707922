package tensor

import "errors"

// Sentinel errors for the validation taxonomy. Operations wrap these with
// contextual detail via fmt.Errorf("...: %w", Err...), so callers match
// with errors.Is.
var (
	// ErrInvalidDimensions reports a buffer or mask whose length does not
	// match the declared width*height*channels extents.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrUnsupportedChannelCount reports an operation applied to a tensor
	// with a channel count it cannot interpret (e.g. grayscale on 2
	// channels).
	ErrUnsupportedChannelCount = errors.New("unsupported channel count")

	// ErrInvalidParameter reports an out-of-domain operation parameter:
	// non-positive sigma, an even kernel size where odd is required, a
	// zero bin count, or an unknown colormap name.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrOutOfBounds reports a pixel access or skeleton connection index
	// outside the valid range.
	ErrOutOfBounds = errors.New("out of bounds")
)
