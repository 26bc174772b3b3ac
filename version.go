package pngsort

import (
  "fmt"
  "runtime"
)

// Version number of the whole pngsort package.
const (
  VERSION_MAJOR = 0
  VERSION_MINOR = 2
  VERSION_PATCH = 0
)

// PrintVersion prints the current version of the pngsort package to standard output,
// prefixed by the specified tool name.
func PrintVersion(toolName string) {
  fmt.Printf("%s version %d.%d.%d (binary: %s, %s)\n",
             toolName,
             VERSION_MAJOR, VERSION_MINOR, VERSION_PATCH,
             runtime.GOOS, runtime.GOARCH)
}
