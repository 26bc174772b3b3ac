package graphics
// Encoding functionality for flat pixel buffers.

import (
  "fmt"
  "image"
  "image/png"
  "io"

  "github.com/el-ev/pngsort/sorter"
  "golang.org/x/image/bmp"
)

// Export encodes the image in the given format (see TYPE_xxx constants) and writes the result
// to w. Formats without an encoder fall back to PNG. The bit depth of the output is 8 bits
// per channel, matching the imported representation.
func (img *Image) Export(w io.Writer, format int) error {
  src, err := img.toImage()
  if err != nil { return err }

  switch format {
    case TYPE_BMP:
      return bmp.Encode(w, src)
    default:
      return png.Encode(w, src)
  }
}


// Used internally. Reconstructs an image.Image from the flat pixel buffer. Opaque buffers are
// expanded to opaque NRGBA; the PNG encoder writes those as truecolor without alpha.
func (img *Image) toImage() (image.Image, error) {
  rect := image.Rect(0, 0, img.Width, img.Height)

  switch img.ColorType {
    case sorter.COLOR_TYPE_GRAYSCALE:
      return &image.Gray{Pix: img.Pix, Stride: img.Width, Rect: rect}, nil

    case sorter.COLOR_TYPE_GRAYSCALE_ALPHA:
      out := image.NewNRGBA(rect)
      for i, j := 0, 0; i < len(img.Pix); i, j = i+2, j+4 {
        out.Pix[j+0] = img.Pix[i]
        out.Pix[j+1] = img.Pix[i]
        out.Pix[j+2] = img.Pix[i]
        out.Pix[j+3] = img.Pix[i+1]
      }
      return out, nil

    case sorter.COLOR_TYPE_RGB:
      out := image.NewNRGBA(rect)
      for i, j := 0, 0; i < len(img.Pix); i, j = i+3, j+4 {
        out.Pix[j+0] = img.Pix[i+0]
        out.Pix[j+1] = img.Pix[i+1]
        out.Pix[j+2] = img.Pix[i+2]
        out.Pix[j+3] = 0xff
      }
      return out, nil

    case sorter.COLOR_TYPE_RGBA:
      return &image.NRGBA{Pix: img.Pix, Stride: img.Width * 4, Rect: rect}, nil
  }

  return nil, fmt.Errorf("Cannot encode images of color type %s", img.ColorType)
}
