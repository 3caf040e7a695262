package main

import (
	"fmt"
	tableaccess "github.com/dusancerhaty/fsm-table-access-simd"
	"github.com/dusancerhaty/fsm-table-access-simd/internal/conf"
	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/pflag"
	"io"
	"os"
)

// exitFailure - Exit code for any failed run. It can never collide with a checksum exit since
// the lane mask keeps bit 6 of the checksum's low byte clear while 255 needs it set.
const exitFailure int = 255

func main() {
	os.Exit(run(os.Args[1:]))
}

// run - Parses arguments, executes the benchmark and returns the process exit code.
// A successful run exits with the low byte of the folded checksum.
func run(args []string) int {
	flags := pflag.NewFlagSet("fsm-table-access", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.SetOutput(io.Discard)

	location := flags.StringP("location-of-files", "l", "", "directory holding the indices.bin and table.bin input files")
	indicesBufferSize := flags.Uint32P("indices-buffer-size", "i", conf.IndicesBufferSizeDefault, "indices buffer size in bytes, rounded up to a power of two")
	tableBufferSize := flags.Uint32P("table-buffer-size", "t", conf.TableBufferSizeDefault, "table buffer size in bytes, rounded up to a power of two")
	cycleCount := flags.Uint32P("cycle-count", "c", 1, "number of passes over the indices buffer per thread")
	threadCount := flags.Uint32P("thread-count", "d", 1, "number of worker threads, each pinned to its own logical CPU")
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

	config, err := tableaccess.NewConfig(*location, *indicesBufferSize, *tableBufferSize, *cycleCount, *threadCount)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", err)
		printUsage(flags)
		return exitFailure
	}

	fmt.Printf("cpu: %s (%d logical cores)\n", cpuid.CPU.BrandName, cpuid.CPU.LogicalCores)
	config.Print(os.Stdout)

	benchmark, err := tableaccess.New(config)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return exitFailure
	}

	report, err := benchmark.Run()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return exitFailure
	}

	report.Print(os.Stdout)

	return int(report.Value) & 0xFF
}

// printUsage - Writes flag usage to stderr
func printUsage(flags *pflag.FlagSet) {
	_, _ = fmt.Fprintln(os.Stderr, "usage: fsm-table-access [options]")
	_, _ = fmt.Fprint(os.Stderr, flags.FlagUsages())
}
