package sorter
// Untied sorting: each selected channel's byte values are reordered independently, breaking
// pixel coherence.

import (
  "sort"

  "github.com/el-ev/pngsort/config"
)

// Used internally. Sorts the byte values of each selected channel independently of the other
// channels, in listed channel order. Unselected channels and the alpha byte keep the original
// input values. Channel passes touch disjoint byte positions and cannot interfere.
func sortUntied(cfg *config.Config, src, out []byte, width, height, bpp int) {
  copy(out, src)

  groups := makeGroups(cfg.SortRange, width, height)

  for _, ch := range cfg.SortChannel {
    chOfs := ch.Index()
    processGroups(len(groups), func(idx int) {
      group := groups[idx]
      values := make([]byte, len(group.read))
      for i, pos := range group.read {
        values[i] = out[pos * bpp + chOfs]
      }

      // descending inverts the comparator instead of reversing the result
      if cfg.Descending {
        sort.Slice(values, func(i, j int) bool { return values[j] < values[i] })
      } else {
        sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
      }

      for rank, value := range values {
        out[group.write[rank] * bpp + chOfs] = value
      }
    })
  }
}
