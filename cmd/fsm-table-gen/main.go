package main

import (
	"fmt"
	tableaccess "github.com/dusancerhaty/fsm-table-access-simd"
	"github.com/dusancerhaty/fsm-table-access-simd/internal/conf"
	"github.com/dusancerhaty/fsm-table-access-simd/internal/datagen"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"io"
	"os"
	"path/filepath"
)

// exitFailure - Exit code when no files could be written
const exitFailure int = 1

func main() {
	os.Exit(run(os.Args[1:]))
}

// run - Parses arguments and writes a set of benchmark input files
func run(args []string) int {
	flags := pflag.NewFlagSet("fsm-table-gen", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.SetOutput(io.Discard)

	location := flags.StringP("location-of-files", "l", "", "directory to write the indices.bin and table.bin files to")
	indicesBufferSize := flags.Uint32P("indices-buffer-size", "i", conf.IndicesBufferSizeDefault, "indices file size in bytes, rounded up to a power of two")
	tableBufferSize := flags.Uint32P("table-buffer-size", "t", conf.TableBufferSizeDefault, "table file size in bytes, rounded up to a power of two")
	seed := flags.Int64P("seed", "s", 1, "seed for the pseudo random file content")
	help := flags.BoolP("help", "h", false, "print this usage information")

	err := flags.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", err)
		printUsage(flags)
		return exitFailure
	}

	if *help {
		printUsage(flags)
		return exitFailure
	}

	// Sizes resolve through the same rules as a benchmark run, so the files always fit a run
	// started with the same size flags
	config, err := tableaccess.NewConfig(*location, *indicesBufferSize, *tableBufferSize, 0, 0)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", err)
		printUsage(flags)
		return exitFailure
	}

	err = datagen.Generate(datagen.Conf{
		LocationOfFiles:   config.LocationOfFiles,
		IndicesBufferSize: config.IndicesBufferSize,
		TableBufferSize:   config.TableBufferSize,
		Seed:              *seed,
	})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return exitFailure
	}

	fmt.Printf("wrote %s (%s)\n", filepath.Join(config.LocationOfFiles, conf.FileWithIndices), humanize.IBytes(uint64(config.IndicesBufferSize)))
	fmt.Printf("wrote %s (%s)\n", filepath.Join(config.LocationOfFiles, conf.FileWithTable), humanize.IBytes(uint64(config.TableBufferSize)))

	return 0
}

// printUsage - Writes flag usage to stderr
func printUsage(flags *pflag.FlagSet) {
	_, _ = fmt.Fprintln(os.Stderr, "usage: fsm-table-gen [options]")
	_, _ = fmt.Fprint(os.Stderr, flags.FlagUsages())
}
