/*
Package pngsort applies a configurable pixel sorting effect to raster images.

The package level API is the embedding surface: Process accepts a serialized configuration
and raw encoded image bytes and returns the re-encoded result. The command line front end
lives in the pngsort subdirectory.
*/
package pngsort

import (
  "bytes"

  "github.com/el-ev/pngsort/config"
  "github.com/el-ev/pngsort/graphics"
  "github.com/el-ev/pngsort/sorter"
)

// Process decodes src, reorders its pixels according to the serialized configuration (JSON
// or XML) and returns the re-encoded image. The output format matches the input format where
// an encoder is available; other input formats are re-encoded as PNG.
func Process(configData, src []byte) ([]byte, error) {
  cfg, err := config.ImportConfig(bytes.NewReader(configData))
  if err != nil { return nil, err }

  img, err := graphics.Import(bytes.NewReader(src))
  if err != nil { return nil, err }

  out, err := sorter.Transform(cfg, img.Pix, img.Width, img.Height, img.ColorType)
  if err != nil { return nil, err }
  img.Pix = out

  var buf bytes.Buffer
  if err := img.Export(&buf, img.GetImageType()); err != nil { return nil, err }
  return buf.Bytes(), nil
}
