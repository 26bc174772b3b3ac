package sorter
// Tied sorting: all channel bytes of a pixel move as one unit.

import (
  "sort"

  "github.com/el-ev/pngsort/config"
)

type sortEntry struct {
  pos int   // the pixel position in the source buffer
  key int   // the value to sort by
}

type sortTable []sortEntry

// Performs a stable sort of the table data.
func (s sortTable) Sort() {
  sort.Stable(s)
}

func (s sortTable) Len() int {
  return len(s)
}

func (s sortTable) Less(i, j int) bool {
  return s[i].key < s[j].key
}

func (s sortTable) Swap(i, j int) {
  s[i], s[j] = s[j], s[i]
}


// Used internally. Reorders whole pixels within each group defined by the sort range. The
// stable sort guarantees that pixels with equal keys keep their original relative order, in
// ascending and descending direction alike.
func sortTied(cfg *config.Config, src, out []byte, width, height, bpp int, colorType ColorType) {
  keyOf := makeSortKeyFunc(cfg, colorType)
  groups := makeGroups(cfg.SortRange, width, height)

  processGroups(len(groups), func(idx int) {
    group := groups[idx]
    table := make(sortTable, len(group.read))
    for i, pos := range group.read {
      ofs := pos * bpp
      table[i] = sortEntry{pos: pos, key: keyOf(src[ofs : ofs+bpp])}
    }
    table.Sort()

    for rank := 0; rank < len(table); rank++ {
      srcOfs := table[rank].pos * bpp
      dstOfs := group.write[rank] * bpp
      copy(out[dstOfs:dstOfs+bpp], src[srcOfs:srcOfs+bpp])
    }
  })
}
