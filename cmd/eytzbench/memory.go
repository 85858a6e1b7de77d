package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
)

// memoryReport is what a child process writes to stdout after building one
// container.
type memoryReport struct {
	Candidate string `cbor:"1,keyasint"`
	N         uint64 `cbor:"2,keyasint"`
	HeapBytes int64  `cbor:"3,keyasint"`
	Count     uint64 `cbor:"4,keyasint"`
}

func newReportCodec() (dtcbor.CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(),
	)
	if err != nil {
		return dtcbor.CBORCodec{}, err
	}
	return codec, nil
}

func heapInUse() int64 {
	runtime.GC()
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return int64(stats.HeapAlloc)
}

// runChild builds a single container of n entries and reports the heap it
// retains. The input entries are released before the second sample.
func runChild(codec dtcbor.CBORCodec, c candidate, n int, w io.Writer) error {
	before := heapInUse()
	built := c.build(testEntries(n))
	after := heapInUse()

	report := memoryReport{
		Candidate: c.id,
		N:         uint64(n),
		HeapBytes: after - before,
		Count:     uint64(built.Count(n - 1)),
	}
	runtime.KeepAlive(built)

	data, err := codec.MarshalCBOR(report)
	if err != nil {
		return fmt.Errorf("encoding memory report: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// childRunner measures one candidate at one size in a fresh process.
type childRunner func(ctx context.Context, c candidate, n int) (memoryReport, error)

func execChild(codec dtcbor.CBORCodec) (childRunner, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locating the benchmark binary: %w", err)
	}
	return func(ctx context.Context, c candidate, n int) (memoryReport, error) {
		cmd := exec.CommandContext(ctx, self,
			"-child", c.id, "-n", strconv.Itoa(n), "-log-level", "NOOP")
		cmd.Stderr = os.Stderr
		out, err := cmd.Output()
		if err != nil {
			return memoryReport{}, fmt.Errorf("%w: %s n=%d: %v", ErrChildFailed, c.id, n, err)
		}
		var report memoryReport
		if err := codec.UnmarshalInto(out, &report); err != nil {
			return memoryReport{}, fmt.Errorf("%w: %s n=%d: %v", ErrChildFailed, c.id, n, err)
		}
		if report.Candidate != c.id || report.N != uint64(n) {
			return memoryReport{}, fmt.Errorf(
				"%w: asked for %s n=%d, got %s n=%d", ErrChildFailed, c.id, n, report.Candidate, report.N)
		}
		return report, nil
	}, nil
}

// memoryPerElement runs trials children and returns the trimmed mean of the
// heap bytes retained per element.
func memoryPerElement(ctx context.Context, run childRunner, c candidate, n, trials int) (float64, error) {
	samples := make([]int64, 0, trials)
	for range trials {
		report, err := run(ctx, c, n)
		if err != nil {
			return 0, err
		}
		samples = append(samples, report.HeapBytes)
	}
	return float64(trimmedMean(samples)) / float64(n), nil
}
