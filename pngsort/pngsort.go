/*
pngsort is the command line front end of the pngsort package. It loads one or more raster
images, reorders their pixels according to a set of sorting options and writes the results
back to disk.

Sorting options can be read from a configuration file in JSON or XML format, from command
line switches, or a combination of both. Command line switches take precedence.
*/
package main

import (
  "fmt"
  "os"
  "path/filepath"
  "strings"

  "github.com/InfinityTools/go-logging"
  "github.com/el-ev/pngsort"
  "github.com/el-ev/pngsort/config"
  "github.com/el-ev/pngsort/graphics"
  "github.com/el-ev/pngsort/sorter"
)

const TOOL_NAME = "pngsort"

func main() {
  err := loadArgs(os.Args)
  if err != nil {
    logging.Errorf("Error: %v\n", err)
    os.Exit(1)
  }

  // Setting global options
  if b, x := argsVerbose(); x {
    if b {
      logging.SetVerbosity(logging.LOG)
    } else {
      logging.SetVerbosity(logging.ERROR)
    }
  }

  logging.SetPrefixCaller(false)
  if b, x := argsLogStyle(); x && b {
    logging.SetPrefixTimestamp(true)
    logging.SetPrefixLevel(true)
  } else {
    logging.SetPrefixTimestamp(false)
    logging.SetPrefixLevel(false)
  }

  if b, x := argsThreaded(); x {
    sorter.SetMultiThreaded(b)
  }

  if _, x := argsVersion(); x {
    pngsort.PrintVersion(TOOL_NAME)
  } else if _, x := argsHelp(); x {
    printHelp()
  } else if argsExtraLength() == 0 {
    printHelp()
  } else {
    err = process()
    if err != nil {
      logging.Errorf("Error: %v\n", err)
      logging.Infoln("Operation failed.")
      os.Exit(1)
    }
    logging.Infoln("Operation finished successfully.")
  }
}


// Processes all input files specified on the command line.
func process() error {
  numFiles := argsExtraLength()
  if numFiles > 1 {
    if _, x := argsOutput(); x {
      return fmt.Errorf("Option --%s cannot be used with multiple input files", CMDOPT_OUTPUT)
    }
  }

  for i := 0; i < numFiles; i++ {
    inFile := argsExtra(i)
    logging.Infof("Processing %q\n", inFile)
    err := processJob(inFile)
    if err != nil { return fmt.Errorf("%q: %w", inFile, err) }
  }
  return nil
}


// Processes a single input file.
func processJob(inFile string) error {
  cfg, err := loadConfig()
  if err != nil { return err }

  fin, err := os.Open(inFile)
  if err != nil { return err }
  defer fin.Close()

  img, err := graphics.Import(fin)
  if err != nil { return err }

  // Color images default to sorting all three channels unless specified otherwise.
  // Grayscale images are left without channels so that the option check can pass.
  if _, x := argsSortChannel(); !x && len(cfg.SortChannel) == 0 {
    if img.ColorType == sorter.COLOR_TYPE_RGB || img.ColorType == sorter.COLOR_TYPE_RGBA {
      cfg.SortChannel = []config.Channel{config.CHANNEL_R, config.CHANNEL_G, config.CHANNEL_B}
    }
  }

  out, err := sorter.Transform(cfg, img.Pix, img.Width, img.Height, img.ColorType)
  if err != nil { return err }
  img.Pix = out

  outFile := outputName(inFile)
  fout, err := os.Create(outFile)
  if err != nil { return err }
  defer fout.Close()

  err = img.Export(fout, outputFormat(img.GetImageType()))
  if err != nil { return err }
  logging.Infof("Created %q\n", outFile)
  return nil
}


// Used internally. Assembles the effective sort configuration from the optional configuration
// file and command line overrides.
func loadConfig() (*config.Config, error) {
  var cfg *config.Config

  if name, x := argsConfigFile(); x {
    fin, err := os.Open(name)
    if err != nil { return nil, fmt.Errorf("Configuration file: %v", err) }
    defer fin.Close()
    cfg, err = config.ImportConfig(fin)
    if err != nil { return nil, fmt.Errorf("Configuration file: %v", err) }
  } else {
    cfg = &config.Config{SortRange: config.SORT_RANGE_ROW}
  }

  if b, x := argsDescending(); x { cfg.Descending = b }
  if v, x := argsSortRange(); x { cfg.SortRange = v }
  if v, x := argsSortMode(); x { cfg.SortMode = v }
  if v, x := argsSortChannel(); x { cfg.SortChannel = v }

  return cfg, nil
}


// Used internally. Determines the output filename for the given input file.
func outputName(inFile string) string {
  if s, x := argsOutput(); x { return s }

  ext := filepath.Ext(inFile)
  base := strings.TrimSuffix(inFile, ext)
  if s, x := argsOutputType(); x { ext = "." + s }
  if len(ext) == 0 { ext = ".png" }
  return base + "_sorted" + ext
}

// Used internally. Determines the output format, based on the imported format and the
// --output-type override.
func outputFormat(imported int) int {
  if s, x := argsOutputType(); x {
    if s == "bmp" { return graphics.TYPE_BMP }
    return graphics.TYPE_PNG
  }
  return imported
}


func printHelp() {
  fmt.Printf("Usage: %s [options] imagefile [imagefile2 ...]\n", os.Args[0])
  const helpText = "A tool that produces glitch art by sorting the pixels of raster images.\n" +
                   "\n" +
                // "...............................................................................\n" +
                   "Options:\n" +
                   "  --verbose                 Show additional log messages.\n" +
                   "  --silent                  Suppress any log messages.\n" +
                   "  --log-style               Print log messages in log style, complete with\n" +
                   "                            timestamp and log level.\n" +
                   "  --threaded                Sort pixel groups in parallel. Used by default on\n" +
                   "                            multicore systems.\n" +
                   "  --no-threaded             Sort pixel groups sequentially.\n" +
                   "  --config file             Read sorting options from the given configuration\n" +
                   "                            file (JSON or XML). Options given on the command\n" +
                   "                            line override options from the file.\n" +
                   "  --output file             Specify the output filename. Only available when a\n" +
                   "                            single input file is given. By default output is\n" +
                   "                            written next to the input file, with _sorted\n" +
                   "                            appended to the name.\n" +
                   "  --output-type type        Specify the output format. Can be png or bmp.\n" +
                   "                            Default: same format as the input where an encoder\n" +
                   "                            is available, png otherwise.\n" +
                   "  --descending              Sort pixels from high to low values.\n" +
                   "  --sort-range range        Specify which pixels are sorted together. Available\n" +
                   "                            ranges: row, column, row-major, column-major.\n" +
                   "                            Default: row\n" +
                   "  --sort-mode mode          Specify how pixels are compared. Available modes:\n" +
                   "                               tied-by-sum    Compare whole pixels by the sum\n" +
                   "                                              of the selected channels.\n" +
                   "                               tied-by-order  Compare whole pixels channel by\n" +
                   "                                              channel, in the order given by\n" +
                   "                                              --sort-channel.\n" +
                   "                               untied         Sort each selected channel\n" +
                   "                                              independently.\n" +
                   "                            Only available for color images. Default:\n" +
                   "                            tied-by-sum\n" +
                   "  --sort-channel channels   Comma-separated list of channels to sort by. The\n" +
                   "                            channels r, g and b are recognized, each at most\n" +
                   "                            once. Only available for color images, where all\n" +
                   "                            three channels are used by default.\n" +
                   "  --help                    Print this help and terminate.\n" +
                   "  --version                 Print version information and terminate.\n" +
                   "\n" +
                   "Image files:\n" +
                   "Images in PNG, BMP, GIF and JPEG format are accepted. Indexed images are\n" +
                   "rejected; convert them to grayscale or truecolor first. Each input file is\n" +
                   "processed with the same sorting options."
  fmt.Println(helpText)
}
