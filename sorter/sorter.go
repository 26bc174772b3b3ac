/*
Package sorter implements the pixel sorting engine: sort key strategies, the four spatial
sort ranges, and the tied and untied reordering algorithms.

The engine operates on flat row-major pixel buffers with one byte per channel. It performs
no I/O and keeps no state between invocations; decoding and encoding are handled by the
graphics package.
*/
package sorter

import (
  "errors"

  "github.com/InfinityTools/go-logging"
  "github.com/el-ev/pngsort/config"
)

// ColorType classifies the pixel layout of a decoded image.
type ColorType int

// Available color types.
const (
  COLOR_TYPE_GRAYSCALE ColorType = iota
  COLOR_TYPE_GRAYSCALE_ALPHA
  COLOR_TYPE_INDEXED
  COLOR_TYPE_RGB
  COLOR_TYPE_RGBA
)

// Validation errors returned by Validate. Use errors.Is to distinguish them.
var (
  ErrDuplicateChannel         = errors.New("Duplicate channels are not allowed in sort_channel")
  ErrModeNotApplicable        = errors.New("Sort mode option is not applicable for Grayscale images")
  ErrChannelNotApplicable     = errors.New("Channel option is not applicable for Grayscale images")
  ErrChannelRequiredForUntied = errors.New("Sort channel must be specified when using Untied sort mode")
  ErrUnsupportedColorType     = errors.New("Indexed color type is not supported")
)

// BytesPerPixel returns the number of bytes making up a single pixel of this color type.
func (ct ColorType) BytesPerPixel() int {
  switch ct {
    case COLOR_TYPE_GRAYSCALE, COLOR_TYPE_INDEXED: return 1
    case COLOR_TYPE_GRAYSCALE_ALPHA:               return 2
    case COLOR_TYPE_RGB:                           return 3
    case COLOR_TYPE_RGBA:                          return 4
  }
  return 0
}

func (ct ColorType) String() string {
  switch ct {
    case COLOR_TYPE_GRAYSCALE:       return "Grayscale"
    case COLOR_TYPE_GRAYSCALE_ALPHA: return "GrayscaleAlpha"
    case COLOR_TYPE_INDEXED:         return "Indexed"
    case COLOR_TYPE_RGB:             return "Rgb"
    case COLOR_TYPE_RGBA:            return "Rgba"
  }
  return "Unknown"
}


// Validate checks whether the given configuration is legal for images of the given color type.
// Checks are applied in a fixed order; the first violated check determines the returned error.
// The function has no side effects.
func Validate(cfg *config.Config, colorType ColorType) error {
  if cfg == nil { return errors.New("No configuration specified") }

  seen := 0
  for _, ch := range cfg.SortChannel {
    bit := 1 << uint(ch.Index())
    if seen & bit != 0 { return ErrDuplicateChannel }
    seen |= bit
  }

  switch colorType {
    case COLOR_TYPE_GRAYSCALE, COLOR_TYPE_GRAYSCALE_ALPHA:
      if cfg.SortMode != config.SORT_MODE_NONE { return ErrModeNotApplicable }
      if len(cfg.SortChannel) > 0 { return ErrChannelNotApplicable }
    case COLOR_TYPE_RGB, COLOR_TYPE_RGBA:
      if cfg.SortMode == config.SORT_MODE_UNTIED && len(cfg.SortChannel) == 0 {
        return ErrChannelRequiredForUntied
      }
    default:
      return ErrUnsupportedColorType
  }

  return nil
}


// Transform validates the configuration and returns a reordered copy of the pixel buffer.
// The input buffer is expected to hold width*height pixels in row-major order without padding
// and is never modified. The returned buffer has the same length as the input.
func Transform(cfg *config.Config, pixels []byte, width, height int, colorType ColorType) ([]byte, error) {
  if err := Validate(cfg, colorType); err != nil { return nil, err }

  logging.Logf("Sorting pixels: range=%s, mode=%s, descending=%v\n",
               cfg.SortRange, cfg.EffectiveMode(), cfg.Descending)

  bpp := colorType.BytesPerPixel()
  out := make([]byte, len(pixels))

  if cfg.EffectiveMode() != config.SORT_MODE_UNTIED {
    sortTied(cfg, pixels, out, width, height, bpp, colorType)
  } else {
    sortUntied(cfg, pixels, out, width, height, bpp)
  }

  logging.Logln("Finished sorting pixels")
  return out, nil
}
