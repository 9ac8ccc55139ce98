package pxl

import "errors"

// Errors returned by allocating operations. Drawing operations never fail:
// out-of-range or degenerate input is clamped or skipped.
var (
	// ErrInvalidSize is returned when a width or height is negative.
	ErrInvalidSize = errors.New("pxl: invalid canvas size")

	// ErrTooLarge is returned when a canvas would exceed MaxPixels.
	// It stands in for an allocation failure.
	ErrTooLarge = errors.New("pxl: canvas too large")

	// ErrReleased is returned when an operation needs the pixels of a
	// canvas whose buffer has already been released.
	ErrReleased = errors.New("pxl: canvas released")

	// ErrChannels is returned when decoded pixels have a channel count
	// outside 1..4.
	ErrChannels = errors.New("pxl: unsupported channel count")

	// ErrShortBuffer is returned when raw pixel data is smaller than the
	// declared dimensions require.
	ErrShortBuffer = errors.New("pxl: pixel data too short")

	// ErrUnsupportedFormat is returned when a file is not a decodable image.
	ErrUnsupportedFormat = errors.New("pxl: unsupported image format")

	// ErrNoPresenter is returned by Context.Flip without a Presenter.
	ErrNoPresenter = errors.New("pxl: no presenter")
)
