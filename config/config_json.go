package config
// Parse functionality for JSON structures.

import (
  "encoding/json"

  "github.com/InfinityTools/go-logging"
)

// Used internally by json.Unmarshal to store pixel sorter settings. Field names follow the
// serialized wire format.
type JsonConfig struct {
  Descending  bool      `json:"descending"`
  SortRange   *string   `json:"sort_range"`
  SortMode    *string   `json:"sort_mode"`
  SortChannel []string  `json:"sort_channel"`
}

// Used internally. Parses JSON source into a Config object.
func importJson(buffer []byte) (config *Config, err error) {
  logging.Logln("Processing JSON configuration")
  jsonConfig := JsonConfig{}
  err = json.Unmarshal(buffer, &jsonConfig)
  if err != nil { return }

  config, err = processConfig(jsonConfig.Descending, jsonConfig.SortRange, jsonConfig.SortMode, jsonConfig.SortChannel)
  return
}
