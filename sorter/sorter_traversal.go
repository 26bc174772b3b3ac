package sorter
// Decomposes the pixel grid into independently sortable groups for each sort range.

import (
  "github.com/el-ev/pngsort/config"
)

// pixelGroup lists the pixel positions of one sortable group. read holds the positions in
// read order, write holds the position each sorted rank is written to. Both orders coincide
// for Row, Column and RowMajor; ColumnMajor reads in row-major order but scatters the sorted
// sequence into the grid column by column.
type pixelGroup struct {
  read  []int
  write []int
}

// Used internally. Builds the group decomposition of a width x height grid for the given
// sort range.
func makeGroups(sortRange config.SortRange, width, height int) []pixelGroup {
  switch sortRange {
    case config.SORT_RANGE_ROW:
      groups := make([]pixelGroup, height)
      for y := 0; y < height; y++ {
        read := make([]int, width)
        for x := 0; x < width; x++ {
          read[x] = y * width + x
        }
        groups[y] = pixelGroup{read: read, write: read}
      }
      return groups

    case config.SORT_RANGE_COLUMN:
      groups := make([]pixelGroup, width)
      for x := 0; x < width; x++ {
        read := make([]int, height)
        for y := 0; y < height; y++ {
          read[y] = y * width + x
        }
        groups[x] = pixelGroup{read: read, write: read}
      }
      return groups

    case config.SORT_RANGE_COLUMN_MAJOR:
      read := make([]int, width * height)
      for i := range read {
        read[i] = i
      }
      // rank r fills column r/height at row r%height
      write := make([]int, width * height)
      for rank := range write {
        x := rank / height
        y := rank % height
        write[rank] = y * width + x
      }
      return []pixelGroup{{read: read, write: write}}

    default:  // row-major
      read := make([]int, width * height)
      for i := range read {
        read[i] = i
      }
      return []pixelGroup{{read: read, write: read}}
  }
}
