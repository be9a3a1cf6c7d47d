package main

import (
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestShmRoundTrip exercises scenario S5 without any separate
// orchestration script: it builds both cmd/shmproducer and
// cmd/shmconsumer with `go run` and forks them as subprocesses attached
// to the same region name, then checks both exit cleanly.
func TestShmRoundTrip(t *testing.T) {
	if os.Getenv("RINGCLOCK_SHM_ROUNDTRIP") == "" {
		t.Skip("set RINGCLOCK_SHM_ROUNDTRIP=1 to run the cross-process shm round trip")
	}

	name := fmt.Sprintf("rb-test-roundtrip-%d", os.Getpid())
	const capacity = 64
	const items = 200_000

	consumer := exec.Command("go", "run", "../shmconsumer",
		"-name", name, "-capacity", fmt.Sprint(capacity), "-items", fmt.Sprint(items))
	consumer.Stdout = os.Stdout
	consumer.Stderr = os.Stderr
	if err := consumer.Start(); err != nil {
		t.Fatalf("starting shmconsumer: %v", err)
	}

	// Give the consumer a moment to reach its attach-retry loop before the
	// producer creates the region, though the consumer's own retry loop
	// tolerates either ordering.
	time.Sleep(50 * time.Millisecond)

	producer := exec.Command("go", "run", ".",
		"-name", name, "-capacity", fmt.Sprint(capacity), "-items", fmt.Sprint(items))
	producer.Stdout = os.Stdout
	producer.Stderr = os.Stderr
	if err := producer.Run(); err != nil {
		t.Fatalf("running shmproducer: %v", err)
	}

	if err := consumer.Wait(); err != nil {
		t.Fatalf("shmconsumer exited with error: %v", err)
	}
}
