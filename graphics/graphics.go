/*
Package graphics provides functions for loading raster images into flat pixel buffers and
saving them back, without having to take care of the format details.
*/
package graphics

import (
  "bytes"
  "errors"
  "image"
  "image/draw"
  "image/gif"
  "image/jpeg"
  "image/png"
  "io"

  "github.com/InfinityTools/go-logging"
  "github.com/el-ev/pngsort/sorter"
  "golang.org/x/image/bmp"
)

// Can be used to identify the imported image format.
const (
  TYPE_UNKNOWN = -1
  TYPE_BMP  = iota
  TYPE_GIF
  TYPE_JPG
  TYPE_PNG
)

// Image represents a decoded raster image as a flat row-major pixel buffer without padding.
type Image struct {
  Pix        []byte             // Width * Height * bytes-per-pixel bytes
  Width      int
  Height     int
  ColorType  sorter.ColorType
  BitDepth   int                // bits per channel; always 8 after import
  format     int                // see TYPE_xxx constants
}


// Import imports the image resource pointed to by the ReadSeeker interface. The source format
// is detected from the file header. The returned image always uses 8 bits per channel;
// indexed sources are carried through as such so that the sorting engine can reject them.
func Import(rs io.ReadSeeker) (*Image, error) {
  if rs == nil { return nil, errors.New("No source specified") }

  hdr := make([]byte, 4)
  if _, err := io.ReadFull(rs, hdr); err != nil { return nil, err }
  if _, err := rs.Seek(0, io.SeekStart); err != nil { return nil, err }

  var src image.Image
  var err error
  format := TYPE_UNKNOWN
  if string(hdr[:2]) == "BM" {
    src, err = bmp.Decode(rs)
    format = TYPE_BMP
  } else if string(hdr[:3]) == "GIF" {
    // animated sources contribute their first frame only
    src, err = gif.Decode(rs)
    format = TYPE_GIF
  } else if bytes.Equal(hdr[:3], []byte{0xff, 0xd8, 0xff}) {
    src, err = jpeg.Decode(rs)
    format = TYPE_JPG
  } else if string(hdr[1:4]) == "PNG" {
    src, err = png.Decode(rs)
    format = TYPE_PNG
  } else {
    err = errors.New("Unrecognized input format")
  }
  if err != nil { return nil, err }

  img := normalize(src)
  img.format = format
  logging.Logf("Imported image: %dx%d, %s\n", img.Width, img.Height, img.ColorType)
  return img, nil
}


// GetImageType returns the format of the imported image. See TYPE_xxx constants.
func (img *Image) GetImageType() int {
  return img.format
}


// Used internally. Converts a decoded image into the flat buffer representation. Sources
// without a direct mapping (YCbCr, 16 bit variants, ...) are rendered to 8 bit RGBA first.
func normalize(src image.Image) *Image {
  b := src.Bounds()
  width, height := b.Dx(), b.Dy()
  img := &Image{Width: width, Height: height, BitDepth: 8}

  switch s := src.(type) {
    case *image.Gray:
      img.ColorType = sorter.COLOR_TYPE_GRAYSCALE
      img.Pix = packRows(s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y), width, height)
    case *image.Paletted:
      img.ColorType = sorter.COLOR_TYPE_INDEXED
      img.Pix = packRows(s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y), width, height)
    case *image.NRGBA:
      img.ColorType = sorter.COLOR_TYPE_RGBA
      img.Pix = packRows(s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y), width * 4, height)
    case *image.RGBA:
      if s.Opaque() {
        // truecolor without alpha: repack to 3 bytes per pixel
        img.ColorType = sorter.COLOR_TYPE_RGB
        img.Pix = packOpaqueRGB(s, width, height)
      } else {
        img.ColorType = sorter.COLOR_TYPE_RGBA
        n := toNRGBA(src)
        img.Pix = packRows(n.Pix, n.Stride, 0, width * 4, height)
      }
    default:
      img.ColorType = sorter.COLOR_TYPE_RGBA
      n := toNRGBA(src)
      img.Pix = packRows(n.Pix, n.Stride, 0, width * 4, height)
  }

  return img
}


// Used internally. Copies height rows of rowBytes length each from a strided pixel buffer
// into a contiguous buffer.
func packRows(src []byte, stride, ofs, rowBytes, height int) []byte {
  out := make([]byte, rowBytes * height)
  for y := 0; y < height; y++ {
    copy(out[y * rowBytes : (y + 1) * rowBytes], src[ofs + y * stride:])
  }
  return out
}

// Used internally. Repacks an opaque RGBA image into a 3 bytes per pixel buffer.
func packOpaqueRGB(src *image.RGBA, width, height int) []byte {
  b := src.Bounds()
  out := make([]byte, width * height * 3)
  di := 0
  for y := 0; y < height; y++ {
    si := src.PixOffset(b.Min.X, b.Min.Y + y)
    for x := 0; x < width; x++ {
      out[di+0] = src.Pix[si+0]
      out[di+1] = src.Pix[si+1]
      out[di+2] = src.Pix[si+2]
      di += 3
      si += 4
    }
  }
  return out
}

// Used internally. Renders the given image onto a fresh 8 bit NRGBA canvas.
func toNRGBA(src image.Image) *image.NRGBA {
  out := image.NewNRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
  draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
  return out
}
