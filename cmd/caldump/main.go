// caldump reads a PocketTopo calibration file and prints the raw sensor
// entries as CSV on stdout.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dlubom/CaveConv/internal/logging"
	"github.com/dlubom/CaveConv/internal/topo"
)

func main() {
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = usage
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logging.Setup("caldump", level)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		log.Error().Err(err).Msg("dump failed")
		os.Exit(1)
	}
}

func run(input string) error {
	buf, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	doc, err := topo.DecodeCalibration(buf)
	if err != nil {
		return fmt.Errorf("decode %s: %w", input, err)
	}

	valid := 0
	for _, e := range doc.Entries {
		if e.Valid {
			valid++
		}
	}
	log.Info().
		Str("file", input).
		Int("entries", len(doc.Entries)).
		Int("valid", valid).
		Msg("calibration loaded")

	return writeEntries(os.Stdout, doc.Entries)
}

func writeEntries(w io.Writer, entries []topo.CalibrationEntry) error {
	cw := csv.NewWriter(w)
	header := []string{"index", "gx", "gy", "gz", "mx", "my", "mz", "group", "valid"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, e := range entries {
		rec := []string{strconv.Itoa(i)}
		for _, v := range []int16{e.GX, e.GY, e.GZ, e.MX, e.MY, e.MZ} {
			rec = append(rec, strconv.Itoa(int(v)))
		}
		rec = append(rec, e.Group.String(), strconv.FormatBool(e.Valid))
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: caldump [flags] <file.cal>\n\n")
	fmt.Fprintf(out, "Reads a PocketTopo calibration file and prints its entries as CSV.\n\nflags:\n")
	flag.PrintDefaults()
}
