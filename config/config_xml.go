package config
// Parse functionality for XML structures.

import (
  "encoding/xml"
  "strings"

  "github.com/InfinityTools/go-logging"
)

// Used internally by xml.Unmarshal to store pixel sorter settings. The channel list is given
// as a single comma-delimited element.
type XmlConfig struct {
  XMLName     xml.Name  `xml:"pngsort"`
  Descending  bool      `xml:"descending"`
  SortRange   *string   `xml:"sort_range"`
  SortMode    *string   `xml:"sort_mode"`
  SortChannel *string   `xml:"sort_channel"`
}

// Used internally. Parses XML source into a Config object.
func importXml(buffer []byte) (config *Config, err error) {
  logging.Logln("Processing XML configuration")
  xmlConfig := XmlConfig{}
  err = xml.Unmarshal(buffer, &xmlConfig)
  if err != nil { return }

  channels := make([]string, 0, 3)
  if xmlConfig.SortChannel != nil && len(strings.TrimSpace(*xmlConfig.SortChannel)) > 0 {
    for _, item := range strings.Split(*xmlConfig.SortChannel, ",") {
      channels = append(channels, strings.TrimSpace(item))
    }
  }

  config, err = processConfig(xmlConfig.Descending, xmlConfig.SortRange, xmlConfig.SortMode, channels)
  return
}
