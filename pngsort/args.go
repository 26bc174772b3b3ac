package main
// Handles command line arguments for pngsort.

import (
  "errors"
  "fmt"
  "os"
  "strings"

  "github.com/InfinityTools/go-cmdargs"
  "github.com/InfinityTools/go-logging"
  "github.com/el-ev/pngsort/config"
)

const (
  CMDOPT_HELP         = "help"
  CMDOPT_VERSION      = "version"
  CMDOPT_VERBOSE      = "verbose"
  CMDOPT_SILENT       = "silent"
  CMDOPT_LOG_STYLE    = "log-style"
  CMDOPT_THREADED     = "threaded"
  CMDOPT_NO_THREADED  = "no-threaded"
  CMDOPT_CONFIG       = "config"
  CMDOPT_OUTPUT       = "output"
  CMDOPT_OUTPUT_TYPE  = "output-type"
  CMDOPT_DESCENDING   = "descending"
  CMDOPT_SORT_RANGE   = "sort-range"
  CMDOPT_SORT_MODE    = "sort-mode"
  CMDOPT_SORT_CHANNEL = "sort-channel"
)

type OptBool struct { value bool; set bool }
type OptText struct { value string; set bool }
type OptRange struct { value config.SortRange; set bool }
type OptMode struct { value config.SortMode; set bool }
type OptChannels struct { value []config.Channel; set bool }

type CmdOptions struct {
  help          OptBool
  version       OptBool
  verbose       OptBool
  logStyle      OptBool
  threaded      OptBool
  configFile    OptText
  output        OptText
  outputType    OptText
  descending    OptBool
  sortRange     OptRange
  sortMode      OptMode
  sortChannel   OptChannels
  optionsLength int
  argSelf       string
  argsExtra     []string
}

var cmdOptions  CmdOptions


func loadArgs(args []string) error {
  params := cmdargs.Create()
  params.AddParameter(CMDOPT_HELP, nil, 0)
  params.AddParameter(CMDOPT_VERSION, nil, 0)
  params.AddParameter(CMDOPT_VERBOSE, nil, 0)
  params.AddParameter(CMDOPT_SILENT, nil, 0)
  params.AddParameter(CMDOPT_LOG_STYLE, nil, 0)
  params.AddParameter(CMDOPT_THREADED, nil, 0)
  params.AddParameter(CMDOPT_NO_THREADED, nil, 0)
  params.AddParameter(CMDOPT_CONFIG, nil, 1)
  params.AddParameter(CMDOPT_OUTPUT, nil, 1)
  params.AddParameter(CMDOPT_OUTPUT_TYPE, nil, 1)
  params.AddParameter(CMDOPT_DESCENDING, nil, 0)
  params.AddParameter(CMDOPT_SORT_RANGE, nil, 1)
  params.AddParameter(CMDOPT_SORT_MODE, nil, 1)
  params.AddParameter(CMDOPT_SORT_CHANNEL, nil, 1)

  err := params.Evaluate(args)
  if err != nil { return err }

  // validating extra arguments
  cmdOptions.argSelf = params.GetArgSelf()
  cmdOptions.argsExtra = make([]string, 0)
  for i := 0; i < params.GetArgExtraLength(); i++ {
    s := params.GetArgExtra(i).ToString()
    // Expanding wildcard
    expanded := params.GetExpandedArgExtra(i)
    if len(expanded) == 0 { expanded = []string{s} }  // falling back to check directly
    for _, name := range expanded {
      fi, err := os.Stat(name)
      if err != nil { return fmt.Errorf("Input file at %d: %v", len(cmdOptions.argsExtra), err) }
      if !fi.Mode().IsRegular() { return fmt.Errorf("Input file does not exist: %q", name) }
      cmdOptions.argsExtra = append(cmdOptions.argsExtra, name)
    }
  }

  // validating options
  cmdOptions.optionsLength = 0
  for idx := 0; idx < params.GetArgLength(); idx++ {
    arg, err := params.GetArgAt(idx)
    if err != nil {
      logging.Warnf("Could not parse command line option at index %d. Skipping...\n", idx)
      continue
    }
    switch arg.Name {
      case CMDOPT_HELP:
        if !cmdOptions.help.set { cmdOptions.optionsLength++ }
        cmdOptions.help = OptBool{true, true}
        return nil
      case CMDOPT_VERSION:
        if !cmdOptions.version.set { cmdOptions.optionsLength++ }
        cmdOptions.version = OptBool{true, true}
        return nil
      case CMDOPT_VERBOSE:
        if !cmdOptions.verbose.set { cmdOptions.optionsLength++ }
        cmdOptions.verbose = OptBool{true, true}
      case CMDOPT_SILENT:
        if !cmdOptions.verbose.set { cmdOptions.optionsLength++ }
        cmdOptions.verbose = OptBool{false, true}
      case CMDOPT_LOG_STYLE:
        if !cmdOptions.logStyle.set { cmdOptions.optionsLength++ }
        cmdOptions.logStyle = OptBool{true, true}
      case CMDOPT_THREADED:
        if !cmdOptions.threaded.set { cmdOptions.optionsLength++ }
        cmdOptions.threaded = OptBool{true, true}
      case CMDOPT_NO_THREADED:
        if !cmdOptions.threaded.set { cmdOptions.optionsLength++ }
        cmdOptions.threaded = OptBool{false, true}
      case CMDOPT_CONFIG:
        if !cmdOptions.configFile.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          s := arg.Arguments[0].ToString()
          if len(s) == 0 { return fmt.Errorf("Option %q: No configuration file specified", arg.Name) }
          cmdOptions.configFile = OptText{s, true}
        }
      case CMDOPT_OUTPUT:
        if !cmdOptions.output.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          s := arg.Arguments[0].ToString()
          if len(s) == 0 { return fmt.Errorf("Option %q: No output file specified", arg.Name) }
          cmdOptions.output = OptText{s, true}
        }
      case CMDOPT_OUTPUT_TYPE:
        if !cmdOptions.outputType.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          s := strings.ToLower(arg.Arguments[0].ToString())
          switch s {
            case "png", "bmp":
            default:
              return fmt.Errorf("Option %q: Unrecognized output type %q", arg.Name, arg.Arguments[0].ToString())
          }
          cmdOptions.outputType = OptText{s, true}
        }
      case CMDOPT_DESCENDING:
        if !cmdOptions.descending.set { cmdOptions.optionsLength++ }
        cmdOptions.descending = OptBool{true, true}
      case CMDOPT_SORT_RANGE:
        if !cmdOptions.sortRange.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          v, err := config.ParseSortRange(arg.Arguments[0].ToString())
          if err != nil { return fmt.Errorf("Option %q: %v", arg.Name, err) }
          cmdOptions.sortRange = OptRange{v, true}
        }
      case CMDOPT_SORT_MODE:
        if !cmdOptions.sortMode.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          v, err := config.ParseSortMode(arg.Arguments[0].ToString())
          if err != nil { return fmt.Errorf("Option %q: %v", arg.Name, err) }
          cmdOptions.sortMode = OptMode{v, true}
        }
      case CMDOPT_SORT_CHANNEL:
        if !cmdOptions.sortChannel.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          v, err := config.ParseChannelList(arg.Arguments[0].ToString())
          if err != nil { return fmt.Errorf("Option %q: %v", arg.Name, err) }
          cmdOptions.sortChannel = OptChannels{v, true}
        }
      default:
        return fmt.Errorf("Unrecognized option: %q", arg.Name)
    }
  }

  // Invalid combination: Options, but no input files
  if len(cmdOptions.argsExtra) == 0 && cmdOptions.optionsLength > 0 {
    return errors.New("No input file specified")
  }

  return nil
}


func argsExtraLength() int {
  if cmdOptions.argsExtra == nil { return 0 }
  return len(cmdOptions.argsExtra)
}

func argsExtra(index int) string {
  if cmdOptions.argsExtra == nil { return "" }
  if index < 0 || index >= len(cmdOptions.argsExtra) { return "" }
  return cmdOptions.argsExtra[index]
}

func argsHelp() (bool, bool) {
  return cmdOptions.help.value, cmdOptions.help.set
}

func argsVersion() (bool, bool) {
  return cmdOptions.version.value, cmdOptions.version.set
}

func argsVerbose() (bool, bool) {
  return cmdOptions.verbose.value, cmdOptions.verbose.set
}

func argsLogStyle() (bool, bool) {
  return cmdOptions.logStyle.value, cmdOptions.logStyle.set
}

func argsThreaded() (bool, bool) {
  return cmdOptions.threaded.value, cmdOptions.threaded.set
}

func argsConfigFile() (string, bool) {
  return cmdOptions.configFile.value, cmdOptions.configFile.set
}

func argsOutput() (string, bool) {
  return cmdOptions.output.value, cmdOptions.output.set
}

func argsOutputType() (string, bool) {
  return cmdOptions.outputType.value, cmdOptions.outputType.set
}

func argsDescending() (bool, bool) {
  return cmdOptions.descending.value, cmdOptions.descending.set
}

func argsSortRange() (config.SortRange, bool) {
  return cmdOptions.sortRange.value, cmdOptions.sortRange.set
}

func argsSortMode() (config.SortMode, bool) {
  return cmdOptions.sortMode.value, cmdOptions.sortMode.set
}

func argsSortChannel() ([]config.Channel, bool) {
  return cmdOptions.sortChannel.value, cmdOptions.sortChannel.set
}
