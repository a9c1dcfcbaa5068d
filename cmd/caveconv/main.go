// caveconv reads a PocketTopo survey file, prints a summary, and exports the
// data to cave-surveying text formats.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dlubom/CaveConv/internal/export"
	"github.com/dlubom/CaveConv/internal/logging"
	"github.com/dlubom/CaveConv/internal/topo"
)

func main() {
	var (
		configPath  = flag.String("config", "", "TOML config file")
		survexPath  = flag.String("survex", "", "write a Survex file to this path")
		format      = flag.String("format", "", "export format id, see -formats")
		outputPath  = flag.String("output", "", "output path for -format, \"-\" or empty for stdout")
		caveName    = flag.String("name", "", "cave name label for exports")
		splays      = flag.Bool("splays", false, "include splay shots in exports")
		listFormats = flag.Bool("formats", false, "list export formats and exit")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Usage = usage
	flag.Parse()

	registry := export.BuiltinRegistry()
	if *listFormats {
		for _, meta := range registry.ListMetadata() {
			fmt.Printf("%-8s %s\n", meta.ID, meta.Description)
		}
		return
	}

	opts := defaultOptions()
	if *configPath != "" {
		loaded, err := loadOptions(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "caveconv: %v\n", err)
			os.Exit(1)
		}
		opts = loaded
	}

	// Explicit flags win over the config file.
	setFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	if setFlags["name"] {
		opts.CaveName = strings.TrimSpace(*caveName)
	}
	if setFlags["splays"] {
		opts.IncludeSplays = *splays
	}

	level, _ := logging.ParseLevel(opts.LogLevel)
	if *verbose {
		level = zerolog.DebugLevel
	}
	logging.Setup("caveconv", level)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *survexPath, *format, *outputPath, registry, opts); err != nil {
		log.Error().Err(err).Msg("conversion failed")
		os.Exit(1)
	}
}

func run(input, survexPath, format, outputPath string, registry *export.Registry, opts options) error {
	buf, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	doc, err := topo.DecodeSurvey(buf)
	if err != nil {
		return fmt.Errorf("decode %s: %w", input, err)
	}

	log.Info().
		Str("file", input).
		Int("trips", len(doc.Trips)).
		Int("shots", len(doc.Shots)).
		Int("references", len(doc.References)).
		Float64("surveyed_m", doc.TotalDistance()).
		Msg("survey loaded")

	if survexPath != "" {
		expOpts := exportOptions(opts, survexPath)
		if err := exportToFile(survexPath, export.Survex{}, doc, expOpts); err != nil {
			return err
		}
		log.Info().Str("path", survexPath).Msg("survex exported")
	}

	if format != "" {
		e, ok := registry.Resolve(format)
		if !ok {
			return fmt.Errorf("unknown format %q, available: %s", format, strings.Join(registry.IDs(), ", "))
		}
		if outputPath == "" || outputPath == "-" {
			return e.Export(os.Stdout, doc, exportOptions(opts, input))
		}
		if err := exportToFile(outputPath, e, doc, exportOptions(opts, outputPath)); err != nil {
			return err
		}
		log.Info().Str("path", outputPath).Str("format", format).Msg("data exported")
	}

	return nil
}

// exportOptions fills the cave name from the given path when no explicit
// name was configured.
func exportOptions(opts options, path string) export.Options {
	name := opts.CaveName
	if name == "" {
		name = baseName(path)
	}
	return export.Options{CaveName: name, IncludeSplays: opts.IncludeSplays}
}

func exportToFile(path string, e export.Exporter, doc *topo.Document, opts export.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := e.Export(f, doc, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// baseName derives the cave label from a filename: the base with its
// extension stripped.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: caveconv [flags] <file.top>\n\n")
	fmt.Fprintf(out, "Reads a PocketTopo survey file, prints a summary, and exports the data.\n\nflags:\n")
	flag.PrintDefaults()
}
