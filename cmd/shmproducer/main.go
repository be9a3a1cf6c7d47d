// Command shmproducer is one half of the scenario-S5 DriverHarness: it
// attaches to a named shm.Backing as the Producer side, writes 1..=N plus
// a final Eof, and exits. Run alongside cmd/shmconsumer against the same
// -name/-capacity/-items to exercise the cross-process publication path.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/arolek/ringclock/ringbuf"
	"github.com/arolek/ringclock/shm"
)

func main() {
	name := flag.String("name", "rb-test", "shared-memory region name")
	capacity := flag.Uint("capacity", 64, "ring capacity")
	items := flag.Uint64("items", 1_000_000, "items to push, 1..=items")
	flag.Parse()

	b, err := shm.Open[int64](*name, uint32(*capacity), shm.Producer)
	if err != nil {
		log.Fatalf("shmproducer: opening region %q: %v", *name, err)
	}
	defer b.Close()

	for i := uint64(1); i <= *items; i++ {
		signal := ringbuf.SignalNone
		if i == *items {
			signal = ringbuf.SignalEof
		}
		b.Core.PushItem(int64(i), signal)
	}

	fmt.Printf("shmproducer: pushed %d items to %q\n", *items, *name)
}
