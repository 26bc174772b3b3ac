package sorter
// Sort key strategies for the tied sorting path.

import (
  "github.com/el-ev/pngsort/config"
)

// sortKeyFunc maps the raw bytes of a single pixel to a totally ordered scalar key.
// Ascending numeric order of keys is the desired ascending pixel order.
type sortKeyFunc func(pixel []byte) int

// Used internally. Selects the sort key strategy for the given configuration and color type.
// Descending order negates the key rather than reversing the sorted sequence, which keeps the
// relative order of equal pixels identical to the ascending case.
func makeSortKeyFunc(cfg *config.Config, colorType ColorType) sortKeyFunc {
  var key sortKeyFunc
  switch colorType {
    case COLOR_TYPE_GRAYSCALE, COLOR_TYPE_GRAYSCALE_ALPHA:
      key = grayIntensityKey
    default:
      offsets := make([]int, len(cfg.SortChannel))
      for i, ch := range cfg.SortChannel { offsets[i] = ch.Index() }
      if cfg.EffectiveMode() == config.SORT_MODE_TIED_BY_ORDER {
        key = rgbOrderKey(offsets)
      } else {
        key = rgbSumKey(offsets)
      }
  }

  if cfg.Descending {
    asc := key
    key = func(pixel []byte) int { return -asc(pixel) }
  }
  return key
}

// Key strategy for grayscale pixels: the value of the intensity channel.
func grayIntensityKey(pixel []byte) int {
  return int(pixel[0])
}

// Key strategy for tied-by-sum sorting: the sum of the selected channel values. The sum is
// independent of the listed channel order; pixels whose selected channels sum equally tie.
func rgbSumKey(offsets []int) sortKeyFunc {
  return func(pixel []byte) int {
    key := 0
    for _, ofs := range offsets { key += int(pixel[ofs]) }
    return key
  }
}

// Key strategy for tied-by-order sorting: a composite key where the first listed channel
// occupies the highest-order byte and later channels break ties lexicographically.
func rgbOrderKey(offsets []int) sortKeyFunc {
  return func(pixel []byte) int {
    key := 0
    for _, ofs := range offsets { key = key<<8 | int(pixel[ofs]) }
    return key
  }
}
