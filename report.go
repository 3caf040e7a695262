package tableaccess

import (
	"fmt"
	"github.com/dusancerhaty/fsm-table-access-simd/internal/conf"
	"github.com/dusancerhaty/fsm-table-access-simd/internal/engine"
	"io"
	"time"
)

// Report - Aggregated outcome of a benchmark run
//   - ThreadCount is the number of workers that contributed
//   - TableAccesses is the total number of table lookups over all workers
//   - TableAccessesAvg is the integer mean of lookups per worker
//   - ClockSumMs, ClockAvgMs and ClockMaxMs are the per worker loop times in milliseconds, summed, averaged and the slowest
//   - DataReadWritten is the number of bytes touched in the table, element size per lookup
//   - ThroughputMBs is DataReadWritten over the summed clock, in decimal megabytes per second
//   - TransactionsAvgMTs is the average worker's millions of lookups per second
//   - TransactionsAllMTs is total lookups over the summed clock
//   - TransactionsMaxMTs is total lookups over the slowest worker's clock
//   - TransactionsSumMTs is the sum of every worker's own rate
//   - Value is the XOR over all worker checksums
type Report struct {
	ThreadCount        uint32
	TableAccesses      uint64
	TableAccessesAvg   uint64
	ClockSumMs         float64
	ClockAvgMs         float64
	ClockMaxMs         float64
	DataReadWritten    float64
	ThroughputMBs      float64
	TransactionsAvgMTs float64
	TransactionsAllMTs float64
	TransactionsMaxMTs float64
	TransactionsSumMTs float64
	Value              uint16
}

// newReport - Folds worker results into a Report. An empty result set gives a zero valued
// report, beyond that the float figures follow plain IEEE division.
func newReport(results []engine.Result) (report Report) {
	report.ThreadCount = uint32(len(results))
	if report.ThreadCount == 0 {
		return
	}

	for _, result := range results {
		ms := float64(result.Elapsed) / float64(time.Millisecond)

		report.TableAccesses += result.TableAccesses
		report.ClockSumMs += ms
		if ms > report.ClockMaxMs {
			report.ClockMaxMs = ms
		}
		report.TransactionsSumMTs += float64(result.TableAccesses) / 1000.0 / ms
		report.Value ^= result.Value
	}

	report.TableAccessesAvg = report.TableAccesses / uint64(report.ThreadCount)
	report.ClockAvgMs = report.ClockSumMs / float64(report.ThreadCount)
	report.DataReadWritten = float64(report.TableAccesses) * float64(conf.TableElementSize)
	report.ThroughputMBs = report.DataReadWritten / 1000.0 / report.ClockSumMs
	report.TransactionsAvgMTs = float64(report.TableAccessesAvg) / 1000.0 / report.ClockAvgMs
	report.TransactionsAllMTs = float64(report.TableAccesses) / 1000.0 / report.ClockSumMs
	report.TransactionsMaxMTs = float64(report.TableAccesses) / 1000.0 / report.ClockMaxMs

	return
}

// Print - Writes the run report line by line
func (R Report) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "table accesses: %d\n", R.TableAccesses)
	_, _ = fmt.Fprintf(w, "clockdiff: %.4f ms\n", R.ClockSumMs)
	_, _ = fmt.Fprintf(w, "data read written: %.4f\n", R.DataReadWritten)
	_, _ = fmt.Fprintf(w, "throughput: %.4f MB/s\n", R.ThroughputMBs)
	_, _ = fmt.Fprintf(w,
		"transactions: AVG per thread %.4f MT/s (a=%d dt=%.4f), AVG all threads %.4f MT/s (a=%d dt=%.4f), %.4f MT/s (a=%d dt=%.4f) THR sum %.4f MT/s\n",
		R.TransactionsAvgMTs, R.TableAccessesAvg, R.ClockAvgMs,
		R.TransactionsAllMTs, R.TableAccesses, R.ClockSumMs,
		R.TransactionsMaxMTs, R.TableAccesses, R.ClockMaxMs,
		R.TransactionsSumMTs)
	_, _ = fmt.Fprintf(w, "value: %d\n", R.Value)
}
