/*
Package config translates pixel sorter configurations from XML or JSON structures into a Config
object for use by the sorting engine.
*/
package config

import (
  "bytes"
  "errors"
  "fmt"
  "io"
  "strings"

  "github.com/InfinityTools/go-logging"
)

// SortRange defines how the pixel grid decomposes into independently sortable groups.
type SortRange int

// Available sort ranges.
const (
  // Sort each row of pixels on its own.
  SORT_RANGE_ROW SortRange = iota
  // Sort each column of pixels on its own.
  SORT_RANGE_COLUMN
  // Sort all pixels as a single sequence, filled back scanline by scanline.
  SORT_RANGE_ROW_MAJOR
  // Sort all pixels as a single sequence, filled back column by column.
  SORT_RANGE_COLUMN_MAJOR
)

// SortMode defines how pixel data is reordered. Only applicable to RGB and RGBA images.
type SortMode int

// Available sort modes.
const (
  // Mode was not specified. Resolved to SORT_MODE_TIED_BY_SUM by Config.EffectiveMode.
  SORT_MODE_NONE SortMode = iota
  // Whole pixels are sorted by the sum of the selected channel values.
  SORT_MODE_TIED_BY_SUM
  // Whole pixels are sorted by the selected channels in listed order.
  SORT_MODE_TIED_BY_ORDER
  // Each selected channel is sorted independently of the others.
  SORT_MODE_UNTIED
)

// Channel identifies a single color channel within an RGB or RGBA pixel.
type Channel int

// Available color channels.
const (
  CHANNEL_R Channel = iota
  CHANNEL_G
  CHANNEL_B
)

// Index returns the byte offset of the channel within a pixel.
func (c Channel) Index() int {
  return int(c)
}

func (c Channel) String() string {
  switch c {
    case CHANNEL_R: return "R"
    case CHANNEL_G: return "G"
    case CHANNEL_B: return "B"
  }
  return fmt.Sprintf("Channel(%d)", int(c))
}

func (sr SortRange) String() string {
  switch sr {
    case SORT_RANGE_ROW:          return "Row"
    case SORT_RANGE_COLUMN:       return "Column"
    case SORT_RANGE_ROW_MAJOR:    return "RowMajor"
    case SORT_RANGE_COLUMN_MAJOR: return "ColumnMajor"
  }
  return fmt.Sprintf("SortRange(%d)", int(sr))
}

func (sm SortMode) String() string {
  switch sm {
    case SORT_MODE_NONE:          return "None"
    case SORT_MODE_TIED_BY_SUM:   return "TiedBySum"
    case SORT_MODE_TIED_BY_ORDER: return "TiedByOrder"
    case SORT_MODE_UNTIED:        return "Untied"
  }
  return fmt.Sprintf("SortMode(%d)", int(sm))
}

// Config describes a single pixel sorting operation.
type Config struct {
  Descending  bool
  SortRange   SortRange
  SortMode    SortMode    // SORT_MODE_NONE if not specified
  SortChannel []Channel   // listed order is significant for TiedByOrder and Untied
}

// EffectiveMode resolves an unspecified sort mode to the default mode (tied, sum-based).
// This is the only place where the default is applied.
func (c *Config) EffectiveMode() SortMode {
  if c.SortMode == SORT_MODE_NONE { return SORT_MODE_TIED_BY_SUM }
  return c.SortMode
}


// ImportConfig constructs a Config object from configuration data found in the source wrapped
// by the Reader object. Both JSON and XML sources are accepted; the format is detected from
// the first non-whitespace character.
func ImportConfig(r io.Reader) (config *Config, err error) {
  logging.Logln("Loading configuration data")
  buffer := make([]byte, 1024)
  totalRead := 0
  for {
    bytesRead, e := r.Read(buffer[totalRead:])
    totalRead += bytesRead
    if e != nil {
      if e != io.EOF { err = e; return }
      break
    }
    if totalRead == len(buffer) {
      buffer = append(buffer, make([]byte, len(buffer))...)
    }
  }
  buffer = buffer[:totalRead]

  // try to determine input format
  isXml := false
  ofs := 0
  whiteSpace := []byte{0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x20}
  for ofs < len(buffer) {
    if bytes.IndexByte(whiteSpace, buffer[ofs]) < 0 {
      if buffer[ofs] == '<' {
        isXml = true
      } else if buffer[ofs] != '{' {
        err = errors.New("Configuration: Unrecognized format")
      }
      break
    }
    ofs++
  }
  if ofs == len(buffer) { err = errors.New("Configuration: No data found") }
  if err != nil { return }

  // parsing source into a Config object
  if isXml {
    config, err = importXml(buffer)
  } else {
    config, err = importJson(buffer)
  }
  if err != nil { return }

  logging.Logln("Finished loading configuration data")
  return
}


// ParseSortRange converts a textual sort range into a SortRange value.
func ParseSortRange(s string) (SortRange, error) {
  switch normalizeToken(s) {
    case "row":         return SORT_RANGE_ROW, nil
    case "column":      return SORT_RANGE_COLUMN, nil
    case "rowmajor":    return SORT_RANGE_ROW_MAJOR, nil
    case "columnmajor": return SORT_RANGE_COLUMN_MAJOR, nil
  }
  return 0, fmt.Errorf("Unrecognized sort range: %q", s)
}

// ParseSortMode converts a textual sort mode into a SortMode value.
func ParseSortMode(s string) (SortMode, error) {
  switch normalizeToken(s) {
    case "tiedbysum":   return SORT_MODE_TIED_BY_SUM, nil
    case "tiedbyorder": return SORT_MODE_TIED_BY_ORDER, nil
    case "untied":      return SORT_MODE_UNTIED, nil
  }
  return 0, fmt.Errorf("Unrecognized sort mode: %q", s)
}

// ParseChannel converts a textual channel name into a Channel value.
func ParseChannel(s string) (Channel, error) {
  switch normalizeToken(s) {
    case "r", "red":    return CHANNEL_R, nil
    case "g", "green":  return CHANNEL_G, nil
    case "b", "blue":   return CHANNEL_B, nil
  }
  return 0, fmt.Errorf("Unrecognized channel: %q", s)
}

// ParseChannelList converts a comma-delimited list of channel names into a Channel sequence.
// An empty or blank input yields an empty sequence.
func ParseChannelList(s string) ([]Channel, error) {
  retVal := make([]Channel, 0, 3)
  if len(strings.TrimSpace(s)) == 0 { return retVal, nil }
  for _, item := range strings.Split(s, ",") {
    ch, err := ParseChannel(item)
    if err != nil { return nil, err }
    retVal = append(retVal, ch)
  }
  return retVal, nil
}


// Used internally. Converts parsed textual settings into a Config object. A nil pointer marks
// an omitted setting.
func processConfig(descending bool, sortRange, sortMode *string, sortChannel []string) (config *Config, err error) {
  cfg := Config{Descending: descending, SortMode: SORT_MODE_NONE, SortChannel: make([]Channel, 0, 3)}

  if sortRange == nil { err = errors.New("Configuration: sort_range is required"); return }
  cfg.SortRange, err = ParseSortRange(*sortRange)
  if err != nil { return }

  if sortMode != nil {
    cfg.SortMode, err = ParseSortMode(*sortMode)
    if err != nil { return }
  }

  for _, item := range sortChannel {
    var ch Channel
    ch, err = ParseChannel(item)
    if err != nil { return }
    cfg.SortChannel = append(cfg.SortChannel, ch)
  }

  config = &cfg
  return
}

// Used internally. Normalizes enum tokens: lower case, separator characters removed.
func normalizeToken(s string) string {
  s = strings.ToLower(strings.TrimSpace(s))
  s = strings.Replace(s, "-", "", -1)
  s = strings.Replace(s, "_", "", -1)
  return s
}
