package config

import (
  "os"
  "strings"
  "testing"

  "github.com/InfinityTools/go-logging"
)

func TestMain(m *testing.M) {
  logging.SetVerbosity(logging.ERROR)
  os.Exit(m.Run())
}


func TestImportConfigJson(t *testing.T) {
  data := `{
    "descending": true,
    "sort_range": "column-major",
    "sort_mode": "tied-by-order",
    "sort_channel": ["g", "r"]
  }`

  cfg, err := ImportConfig(strings.NewReader(data))
  if err != nil { t.Fatalf("ImportConfig() failed: %v", err) }

  if !cfg.Descending { t.Error("Descending = false, want true") }
  if cfg.SortRange != SORT_RANGE_COLUMN_MAJOR { t.Errorf("SortRange = %s, want ColumnMajor", cfg.SortRange) }
  if cfg.SortMode != SORT_MODE_TIED_BY_ORDER { t.Errorf("SortMode = %s, want TiedByOrder", cfg.SortMode) }
  if len(cfg.SortChannel) != 2 || cfg.SortChannel[0] != CHANNEL_G || cfg.SortChannel[1] != CHANNEL_R {
    t.Errorf("SortChannel = %v, want [G R]", cfg.SortChannel)
  }
}

func TestImportConfigJsonDefaults(t *testing.T) {
  cfg, err := ImportConfig(strings.NewReader(`{"sort_range": "row"}`))
  if err != nil { t.Fatalf("ImportConfig() failed: %v", err) }

  if cfg.Descending { t.Error("Descending = true, want false") }
  if cfg.SortRange != SORT_RANGE_ROW { t.Errorf("SortRange = %s, want Row", cfg.SortRange) }
  if cfg.SortMode != SORT_MODE_NONE { t.Errorf("SortMode = %s, want None", cfg.SortMode) }
  if len(cfg.SortChannel) != 0 { t.Errorf("SortChannel = %v, want empty", cfg.SortChannel) }
}

func TestImportConfigXml(t *testing.T) {
  data := `<?xml version="1.0" encoding="UTF-8"?>
  <pngsort>
    <descending>true</descending>
    <sort_range>column</sort_range>
    <sort_mode>untied</sort_mode>
    <sort_channel>r, b</sort_channel>
  </pngsort>`

  cfg, err := ImportConfig(strings.NewReader(data))
  if err != nil { t.Fatalf("ImportConfig() failed: %v", err) }

  if !cfg.Descending { t.Error("Descending = false, want true") }
  if cfg.SortRange != SORT_RANGE_COLUMN { t.Errorf("SortRange = %s, want Column", cfg.SortRange) }
  if cfg.SortMode != SORT_MODE_UNTIED { t.Errorf("SortMode = %s, want Untied", cfg.SortMode) }
  if len(cfg.SortChannel) != 2 || cfg.SortChannel[0] != CHANNEL_R || cfg.SortChannel[1] != CHANNEL_B {
    t.Errorf("SortChannel = %v, want [R B]", cfg.SortChannel)
  }
}

func TestImportConfigErrors(t *testing.T) {
  tests := []struct {
    name string
    data string
  }{
    {"empty source", ""},
    {"whitespace only", "  \n\t  "},
    {"unrecognized format", "sort_range = row"},
    {"missing sort range", `{"descending": true}`},
    {"bad sort range", `{"sort_range": "diagonal"}`},
    {"bad sort mode", `{"sort_range": "row", "sort_mode": "loose"}`},
    {"bad channel", `{"sort_range": "row", "sort_channel": ["x"]}`},
    {"malformed json", `{"sort_range": `},
    {"malformed xml", `<pngsort><sort_range>row`},
  }

  for _, tt := range tests {
    if _, err := ImportConfig(strings.NewReader(tt.data)); err == nil {
      t.Errorf("%s: ImportConfig() succeeded, want error", tt.name)
    }
  }
}


func TestEffectiveMode(t *testing.T) {
  cfg := Config{}
  if got := cfg.EffectiveMode(); got != SORT_MODE_TIED_BY_SUM {
    t.Errorf("EffectiveMode() = %s, want TiedBySum", got)
  }

  cfg.SortMode = SORT_MODE_UNTIED
  if got := cfg.EffectiveMode(); got != SORT_MODE_UNTIED {
    t.Errorf("EffectiveMode() = %s, want Untied", got)
  }
}


func TestParseSortRange(t *testing.T) {
  tests := []struct {
    input string
    want  SortRange
  }{
    {"row", SORT_RANGE_ROW},
    {"Row", SORT_RANGE_ROW},
    {"column", SORT_RANGE_COLUMN},
    {"row-major", SORT_RANGE_ROW_MAJOR},
    {"ROW_MAJOR", SORT_RANGE_ROW_MAJOR},
    {"RowMajor", SORT_RANGE_ROW_MAJOR},
    {"columnmajor", SORT_RANGE_COLUMN_MAJOR},
    {" column-major ", SORT_RANGE_COLUMN_MAJOR},
  }
  for _, tt := range tests {
    got, err := ParseSortRange(tt.input)
    if err != nil { t.Errorf("ParseSortRange(%q) failed: %v", tt.input, err); continue }
    if got != tt.want { t.Errorf("ParseSortRange(%q) = %s, want %s", tt.input, got, tt.want) }
  }

  if _, err := ParseSortRange("diagonal"); err == nil {
    t.Error("ParseSortRange(\"diagonal\") succeeded, want error")
  }
}

func TestParseSortMode(t *testing.T) {
  tests := []struct {
    input string
    want  SortMode
  }{
    {"tied-by-sum", SORT_MODE_TIED_BY_SUM},
    {"TiedBySum", SORT_MODE_TIED_BY_SUM},
    {"tied_by_order", SORT_MODE_TIED_BY_ORDER},
    {"untied", SORT_MODE_UNTIED},
    {"Untied", SORT_MODE_UNTIED},
  }
  for _, tt := range tests {
    got, err := ParseSortMode(tt.input)
    if err != nil { t.Errorf("ParseSortMode(%q) failed: %v", tt.input, err); continue }
    if got != tt.want { t.Errorf("ParseSortMode(%q) = %s, want %s", tt.input, got, tt.want) }
  }

  if _, err := ParseSortMode("loose"); err == nil {
    t.Error("ParseSortMode(\"loose\") succeeded, want error")
  }
}

func TestParseChannelList(t *testing.T) {
  got, err := ParseChannelList("r,g,b")
  if err != nil { t.Fatalf("ParseChannelList() failed: %v", err) }
  if len(got) != 3 || got[0] != CHANNEL_R || got[1] != CHANNEL_G || got[2] != CHANNEL_B {
    t.Errorf("ParseChannelList(\"r,g,b\") = %v", got)
  }

  got, err = ParseChannelList("Blue, red")
  if err != nil { t.Fatalf("ParseChannelList() failed: %v", err) }
  if len(got) != 2 || got[0] != CHANNEL_B || got[1] != CHANNEL_R {
    t.Errorf("ParseChannelList(\"Blue, red\") = %v", got)
  }

  got, err = ParseChannelList("  ")
  if err != nil { t.Fatalf("ParseChannelList() failed: %v", err) }
  if len(got) != 0 { t.Errorf("ParseChannelList(\"  \") = %v, want empty", got) }

  if _, err = ParseChannelList("r,x"); err == nil {
    t.Error("ParseChannelList(\"r,x\") succeeded, want error")
  }
}
