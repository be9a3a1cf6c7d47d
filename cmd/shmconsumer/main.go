// Command shmconsumer is the other half of the scenario-S5 DriverHarness:
// it attaches to a named shm.Backing as the Consumer side, verifies the
// identical 1..=N + Eof sequence cmd/shmproducer wrote, and reports
// throughput.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/arolek/ringclock/ringbuf"
	"github.com/arolek/ringclock/shm"
)

func main() {
	name := flag.String("name", "rb-test", "shared-memory region name")
	capacity := flag.Uint("capacity", 64, "ring capacity")
	items := flag.Uint64("items", 1_000_000, "items expected, 1..=items")
	flag.Parse()

	var b *shm.Backing[int64]
	var err error
	for attempt := 0; attempt < 100; attempt++ {
		b, err = shm.Open[int64](*name, uint32(*capacity), shm.Consumer)
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		log.Fatalf("shmconsumer: attaching to region %q: %v", *name, err)
	}
	defer b.Close()

	start := time.Now()
	var item int64
	var signal ringbuf.Signal
	for i := uint64(1); i <= *items; i++ {
		b.Core.Pop(&item, &signal)
		if item != int64(i) {
			log.Fatalf("shmconsumer: item %d: got %d, want %d", i, item, i)
		}
		if i < *items && signal == ringbuf.SignalEof {
			log.Fatalf("shmconsumer: premature eof at item %d", i)
		}
	}
	if signal != ringbuf.SignalEof {
		log.Fatalf("shmconsumer: final signal was %v, want eof", signal)
	}
	if !b.Core.WriteFinished() {
		log.Fatal("shmconsumer: WriteFinished false after observing eof signal")
	}

	elapsed := time.Since(start).Seconds()
	fmt.Printf("shmconsumer: verified %d items from %q\nTime: %.6fs\nRate: %.2f MB/s\n",
		*items, *name, elapsed, float64(*items)*8/elapsed/1e6)
}
