package graphics

import (
  "bytes"
  "image"
  "image/color"
  "image/png"
  "os"
  "testing"

  "github.com/InfinityTools/go-logging"
  "github.com/el-ev/pngsort/sorter"
  "golang.org/x/image/bmp"
)

func TestMain(m *testing.M) {
  logging.SetVerbosity(logging.ERROR)
  os.Exit(m.Run())
}

// Used internally. Encodes the given image as PNG and imports it again.
func importPng(t *testing.T, src image.Image) *Image {
  t.Helper()
  var buf bytes.Buffer
  if err := png.Encode(&buf, src); err != nil { t.Fatalf("png.Encode() failed: %v", err) }
  img, err := Import(bytes.NewReader(buf.Bytes()))
  if err != nil { t.Fatalf("Import() failed: %v", err) }
  return img
}


func TestImportGrayPng(t *testing.T) {
  src := image.NewGray(image.Rect(0, 0, 3, 2))
  copy(src.Pix, []byte{10, 20, 30, 40, 50, 60})

  img := importPng(t, src)
  if img.ColorType != sorter.COLOR_TYPE_GRAYSCALE {
    t.Fatalf("ColorType = %s, want Grayscale", img.ColorType)
  }
  if img.Width != 3 || img.Height != 2 {
    t.Fatalf("size = %dx%d, want 3x2", img.Width, img.Height)
  }
  if img.BitDepth != 8 { t.Errorf("BitDepth = %d, want 8", img.BitDepth) }
  if img.GetImageType() != TYPE_PNG { t.Errorf("GetImageType() = %d, want TYPE_PNG", img.GetImageType()) }
  if !bytes.Equal(img.Pix, src.Pix) {
    t.Errorf("Pix = %v, want %v", img.Pix, src.Pix)
  }
}

func TestImportTruecolorPng(t *testing.T) {
  // opaque image: the encoder drops the alpha channel, the import repacks to 3 bytes per pixel
  src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
  copy(src.Pix, []byte{10, 20, 30, 255, 40, 50, 60, 255})

  img := importPng(t, src)
  if img.ColorType != sorter.COLOR_TYPE_RGB {
    t.Fatalf("ColorType = %s, want Rgb", img.ColorType)
  }
  want := []byte{10, 20, 30, 40, 50, 60}
  if !bytes.Equal(img.Pix, want) {
    t.Errorf("Pix = %v, want %v", img.Pix, want)
  }
}

func TestImportAlphaPng(t *testing.T) {
  src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
  copy(src.Pix, []byte{10, 20, 30, 128, 40, 50, 60, 255})

  img := importPng(t, src)
  if img.ColorType != sorter.COLOR_TYPE_RGBA {
    t.Fatalf("ColorType = %s, want Rgba", img.ColorType)
  }
  if !bytes.Equal(img.Pix, src.Pix) {
    t.Errorf("Pix = %v, want %v", img.Pix, src.Pix)
  }
}

func TestImportIndexedPng(t *testing.T) {
  palette := color.Palette{color.Black, color.White}
  src := image.NewPaletted(image.Rect(0, 0, 2, 2), palette)
  copy(src.Pix, []byte{0, 1, 1, 0})

  img := importPng(t, src)
  if img.ColorType != sorter.COLOR_TYPE_INDEXED {
    t.Fatalf("ColorType = %s, want Indexed", img.ColorType)
  }
  if !bytes.Equal(img.Pix, src.Pix) {
    t.Errorf("Pix = %v, want %v", img.Pix, src.Pix)
  }
}

func TestImportBmp(t *testing.T) {
  src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
  copy(src.Pix, []byte{10, 20, 30, 255, 40, 50, 60, 255})

  var buf bytes.Buffer
  if err := bmp.Encode(&buf, src); err != nil { t.Fatalf("bmp.Encode() failed: %v", err) }
  img, err := Import(bytes.NewReader(buf.Bytes()))
  if err != nil { t.Fatalf("Import() failed: %v", err) }

  if img.GetImageType() != TYPE_BMP {
    t.Errorf("GetImageType() = %d, want TYPE_BMP", img.GetImageType())
  }
  if img.ColorType != sorter.COLOR_TYPE_RGB {
    t.Fatalf("ColorType = %s, want Rgb", img.ColorType)
  }
  want := []byte{10, 20, 30, 40, 50, 60}
  if !bytes.Equal(img.Pix, want) {
    t.Errorf("Pix = %v, want %v", img.Pix, want)
  }
}

func TestImportUnrecognized(t *testing.T) {
  if _, err := Import(bytes.NewReader([]byte("no image data here"))); err == nil {
    t.Error("Import() succeeded, want error")
  }
}


func TestExportGrayPng(t *testing.T) {
  img := &Image{
    Pix:       []byte{10, 20, 30, 40},
    Width:     2,
    Height:    2,
    ColorType: sorter.COLOR_TYPE_GRAYSCALE,
    BitDepth:  8,
  }

  var buf bytes.Buffer
  if err := img.Export(&buf, TYPE_PNG); err != nil { t.Fatalf("Export() failed: %v", err) }

  decoded, err := png.Decode(bytes.NewReader(buf.Bytes()))
  if err != nil { t.Fatalf("png.Decode() failed: %v", err) }
  gray, ok := decoded.(*image.Gray)
  if !ok { t.Fatalf("decoded type = %T, want *image.Gray", decoded) }
  if !bytes.Equal(gray.Pix, img.Pix) {
    t.Errorf("decoded Pix = %v, want %v", gray.Pix, img.Pix)
  }
}

func TestExportRgbRoundTrip(t *testing.T) {
  img := &Image{
    Pix:       []byte{10, 20, 30, 40, 50, 60},
    Width:     2,
    Height:    1,
    ColorType: sorter.COLOR_TYPE_RGB,
    BitDepth:  8,
  }

  for _, format := range []int{TYPE_PNG, TYPE_BMP} {
    var buf bytes.Buffer
    if err := img.Export(&buf, format); err != nil { t.Fatalf("Export(%d) failed: %v", format, err) }

    back, err := Import(bytes.NewReader(buf.Bytes()))
    if err != nil { t.Fatalf("Import() failed: %v", err) }
    if back.ColorType != sorter.COLOR_TYPE_RGB {
      t.Fatalf("format %d: ColorType = %s, want Rgb", format, back.ColorType)
    }
    if !bytes.Equal(back.Pix, img.Pix) {
      t.Errorf("format %d: Pix = %v, want %v", format, back.Pix, img.Pix)
    }
  }
}

func TestExportRgbaPng(t *testing.T) {
  img := &Image{
    Pix:       []byte{10, 20, 30, 128, 40, 50, 60, 200},
    Width:     2,
    Height:    1,
    ColorType: sorter.COLOR_TYPE_RGBA,
    BitDepth:  8,
  }

  var buf bytes.Buffer
  if err := img.Export(&buf, TYPE_PNG); err != nil { t.Fatalf("Export() failed: %v", err) }

  back, err := Import(bytes.NewReader(buf.Bytes()))
  if err != nil { t.Fatalf("Import() failed: %v", err) }
  if back.ColorType != sorter.COLOR_TYPE_RGBA {
    t.Fatalf("ColorType = %s, want Rgba", back.ColorType)
  }
  if !bytes.Equal(back.Pix, img.Pix) {
    t.Errorf("Pix = %v, want %v", back.Pix, img.Pix)
  }
}

func TestExportGrayscaleAlphaPng(t *testing.T) {
  img := &Image{
    Pix:       []byte{10, 255, 20, 128},
    Width:     2,
    Height:    1,
    ColorType: sorter.COLOR_TYPE_GRAYSCALE_ALPHA,
    BitDepth:  8,
  }

  var buf bytes.Buffer
  if err := img.Export(&buf, TYPE_PNG); err != nil { t.Fatalf("Export() failed: %v", err) }

  decoded, err := png.Decode(bytes.NewReader(buf.Bytes()))
  if err != nil { t.Fatalf("png.Decode() failed: %v", err) }
  r, g, b, a := decoded.At(1, 0).RGBA()
  if r>>8 != g>>8 || g>>8 != b>>8 {
    t.Errorf("pixel (1,0) is not gray: %d %d %d", r>>8, g>>8, b>>8)
  }
  if a>>8 != 128 {
    t.Errorf("pixel (1,0) alpha = %d, want 128", a>>8)
  }
}

func TestExportIndexedFails(t *testing.T) {
  img := &Image{
    Pix:       []byte{0, 1},
    Width:     2,
    Height:    1,
    ColorType: sorter.COLOR_TYPE_INDEXED,
    BitDepth:  8,
  }

  var buf bytes.Buffer
  if err := img.Export(&buf, TYPE_PNG); err == nil {
    t.Error("Export() succeeded for indexed buffer, want error")
  }
}
