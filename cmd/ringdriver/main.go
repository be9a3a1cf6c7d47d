// Command ringdriver is the heap-backed DriverHarness collaborator: it
// spawns one producer goroutine and one consumer goroutine over a
// ringbuf.Core[int64], stamps start/end times from a clock.Clock, and
// prints elapsed time and throughput the way the original driver's
// repeated-run loop did.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/arolek/ringclock/benchlog"
	"github.com/arolek/ringclock/clock"
	"github.com/arolek/ringclock/ringbuf"
	"github.com/arolek/ringclock/ringcfg"
)

// dropError is a lightweight diagnostic logger for non-hot setup and
// shutdown paths; it is never called from the producer/consumer loops.
func dropError(prefix string, err error) {
	if err != nil {
		log.Printf("%s: %v", prefix, err)
	} else {
		log.Print(prefix)
	}
}

func main() {
	cfgPath := flag.String("config", "", "path to a ringcfg JSON config; defaults used if empty")
	runs := flag.Int("runs", 0, "override the config's run count (0 = use config)")
	mode := flag.String("mode", "", "override the config's mode: spsc, producer-rate, consumer-rate")
	logPath := flag.String("benchlog", "ringdriver_bench.db", "path to the benchlog SQLite database")
	flag.Parse()

	cfg := ringcfg.Default()
	if *cfgPath != "" {
		loaded, err := ringcfg.Load(*cfgPath)
		if err != nil {
			dropError("ringdriver: loading config", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *runs > 0 {
		cfg.Runs = *runs
	}
	if *mode != "" {
		cfg.Mode = *mode
	}

	store, err := benchlog.Open(*logPath)
	if err != nil {
		dropError("ringdriver: opening benchlog", err)
		os.Exit(1)
	}
	defer store.Close()

	for run := 1; run <= cfg.Runs; run++ {
		result, err := driveOnce(cfg)
		if err != nil {
			dropError("ringdriver: run failed", err)
			os.Exit(1)
		}
		fmt.Printf("run %d/%d — Time: %.6fs\nRate: %.2f MB/s\n", run, cfg.Runs, result.elapsedSec, result.bytesPerSec/1e6)

		if err := store.Append(benchlog.Run{
			Mode:        cfg.Mode,
			ClockKind:   cfg.ClockKind,
			Capacity:    cfg.Capacity,
			Items:       cfg.Items,
			Nice:        cfg.Nice,
			ElapsedSec:  result.elapsedSec,
			BytesPerSec: result.bytesPerSec,
		}); err != nil {
			dropError("ringdriver: appending benchlog row", err)
		}
	}
}

type runResult struct {
	elapsedSec  float64
	bytesPerSec float64
}

func driveOnce(cfg ringcfg.Config) (runResult, error) {
	kind, err := cfg.ClockKindValue()
	if err != nil {
		return runResult{}, err
	}
	clk, err := clock.New(kind, cfg.PinCPU)
	if err != nil {
		return runResult{}, fmt.Errorf("ringdriver: starting clock: %w", err)
	}
	defer clk.Close()

	switch cfg.Mode {
	case "", "spsc":
		return driveSPSC(cfg, clk)
	case "producer-rate":
		return driveInfinite(cfg, clk, true)
	case "consumer-rate":
		return driveInfinite(cfg, clk, false)
	default:
		return runResult{}, fmt.Errorf("ringdriver: unknown mode %q", cfg.Mode)
	}
}

// driveSPSC runs the scenario-S1 shape: one producer pushing 1..=items,
// one consumer summing them and verifying the final Eof, against a
// capacity-bounded Core so backpressure is exercised on both sides.
func driveSPSC(cfg ringcfg.Config, clk *clock.Clock) (runResult, error) {
	ring := ringbuf.New[int64](int(cfg.Capacity))
	done := make(chan error, 1)

	start := clk.Read()

	go func() {
		for i := int64(1); i <= int64(cfg.Items); i++ {
			signal := ringbuf.SignalNone
			if i == int64(cfg.Items) {
				signal = ringbuf.SignalEof
			}
			ring.PushItem(i, signal)
		}
	}()

	go func() {
		var sum int64
		var item int64
		var signal ringbuf.Signal
		for i := uint64(0); i < cfg.Items; i++ {
			ring.Pop(&item, &signal)
			sum += item
		}
		if signal != ringbuf.SignalEof {
			done <- fmt.Errorf("ringdriver: final signal was %v, not eof", signal)
			return
		}
		want := int64(cfg.Items) * (int64(cfg.Items) + 1) / 2
		if sum != want {
			done <- fmt.Errorf("ringdriver: sum mismatch: got %d, want %d", sum, want)
			return
		}
		done <- nil
	}()

	if err := <-done; err != nil {
		return runResult{}, err
	}
	elapsed := clk.Read() - start
	if elapsed <= 0 {
		elapsed = 1e-9
	}
	bytesPerSec := float64(cfg.Items) * 8 / elapsed
	return runResult{elapsedSec: elapsed, bytesPerSec: bytesPerSec}, nil
}

// driveInfinite measures a lone producer's or consumer's maximum rate in
// isolation over ringbuf.Infinite, per spec's "Infinite variant" note.
func driveInfinite(cfg ringcfg.Config, clk *clock.Clock, producerSide bool) (runResult, error) {
	inf := ringbuf.NewInfinite[int64]()
	start := clk.Read()

	if producerSide {
		for i := int64(1); i <= int64(cfg.Items); i++ {
			inf.Push(i, ringbuf.SignalNone)
		}
	} else {
		var item int64
		for i := uint64(0); i < cfg.Items; i++ {
			inf.Pop(&item, nil)
		}
	}

	elapsed := clk.Read() - start
	if elapsed <= 0 {
		elapsed = 1e-9
	}
	bytesPerSec := float64(cfg.Items) * 8 / elapsed
	return runResult{elapsedSec: elapsed, bytesPerSec: bytesPerSec}, nil
}
