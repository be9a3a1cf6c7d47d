// Package shm implements the cross-process SharedMemoryBacking: a named
// mapped region holding a ring buffer's header, write/read pointers, and
// slot arrays, laid out bit-exact so two unrelated processes agree on
// offsets regardless of their own mapping base address.
package shm

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"unsafe"

	"golang.org/x/crypto/sha3"
	"golang.org/x/sys/unix"

	"github.com/arolek/ringclock/ringbuf"
	"github.com/arolek/ringclock/ringerr"
)

// Direction selects whether Open creates a fresh region (Producer) or
// attaches to an existing one (Consumer). Open rejects a second Producer
// for the same name, since Producer requires the backing file not already
// exist; it does not detect a second Consumer attaching to the same name.
type Direction int

const (
	Producer Direction = iota
	Consumer
)

const (
	headerSize = 64

	offCapacity      = 0
	offWritePt       = 8
	offReadPt        = 16
	offWriteFinished = 24
)

// Backing is a SharedMemoryBacking for payload type T: a mapped region
// whose header lives at a fixed offset and whose write_pt/read_pt/
// write_finished words are shared directly with whichever other process
// attached to the same name, so both sides run the identical publication
// discipline ringbuf.Core expects from two goroutines.
type Backing[T any] struct {
	file *os.File
	mem  []byte

	Core *ringbuf.Core[T]
}

// Open creates (Producer) or attaches to (Consumer) the named region
// sized for capacity slots of T. name is hashed into a filesystem-safe
// path under os.TempDir so arbitrary caller-supplied names never need
// sanitizing themselves.
func Open[T any](name string, capacity uint32, dir Direction) (*Backing[T], error) {
	if capacity == 0 {
		return nil, ringerr.New(ringerr.CodeSizeMismatch, "shm.Open", fmt.Errorf("capacity must be > 0"))
	}
	path := backingPath(name)
	var zero T
	size := int64(headerSize) + int64(capacity)*int64(unsafe.Sizeof(zero)) + int64(capacity)

	var f *os.File
	var err error
	switch dir {
	case Producer:
		f, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
		if os.IsExist(err) {
			return nil, ringerr.New(ringerr.CodeNameCollision, "shm.Open", err)
		}
		if err != nil {
			return nil, ringerr.New(ringerr.CodePermissionDenied, "shm.Open", err)
		}
		if ferr := f.Truncate(size); ferr != nil {
			f.Close()
			os.Remove(path)
			return nil, ringerr.New(ringerr.CodeSizeMismatch, "shm.Open: truncate", ferr)
		}
	case Consumer:
		f, err = os.OpenFile(path, os.O_RDWR, 0o600)
		if err != nil {
			return nil, ringerr.New(ringerr.CodePermissionDenied, "shm.Open", err)
		}
		info, serr := f.Stat()
		if serr != nil {
			f.Close()
			return nil, ringerr.New(ringerr.CodeSizeMismatch, "shm.Open: stat", serr)
		}
		if info.Size() != size {
			f.Close()
			return nil, ringerr.New(ringerr.CodeSizeMismatch, "shm.Open",
				fmt.Errorf("region is %d bytes, want %d for capacity %d", info.Size(), size, capacity))
		}
	default:
		return nil, fmt.Errorf("shm.Open: unknown Direction %d", dir)
	}

	mem, merr := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if merr != nil {
		f.Close()
		if dir == Producer {
			os.Remove(path)
		}
		return nil, ringerr.New(ringerr.CodePermissionDenied, "shm.Open: mmap", merr)
	}

	b := &Backing[T]{file: f, mem: mem}
	storage := newMappedStorage[T](mem, capacity)
	finished := newMappedFinished(mem)

	if dir == Producer {
		atomic.StoreUint64(b.word64(offCapacity), uint64(capacity))
		atomic.StoreUint64(b.word64(offWritePt), 0)
		atomic.StoreUint64(b.word64(offReadPt), 0)
		atomic.StoreUint32(b.word32(offWriteFinished), 0)
	} else {
		gotCap := atomic.LoadUint64(b.word64(offCapacity))
		if gotCap != uint64(capacity) {
			b.Close()
			return nil, ringerr.New(ringerr.CodeSizeMismatch, "shm.Open",
				fmt.Errorf("region capacity %d does not match requested %d", gotCap, capacity))
		}
	}

	b.Core = ringbuf.NewOver[T](storage, finished, b.word64(offWritePt), b.word64(offReadPt))
	return b, nil
}

// Close unmaps and closes the backing file but leaves the backing path on
// disk — callers on the Producer side must call Remove separately once
// both processes have detached, so a consumer mid-attach never races a
// vanishing region.
func (b *Backing[T]) Close() error {
	err := unix.Munmap(b.mem)
	if cerr := b.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// Remove deletes the backing path for name. Only the Producer side should
// call this, after both processes have detached.
func Remove(name string) error {
	return os.Remove(backingPath(name))
}

func (b *Backing[T]) word64(off int) *uint64 {
	return (*uint64)(unsafe.Pointer(&b.mem[off]))
}

func (b *Backing[T]) word32(off int) *uint32 {
	return (*uint32)(unsafe.Pointer(&b.mem[off]))
}

func backingPath(name string) string {
	sum := sha3.Sum256([]byte(name))
	return filepath.Join(os.TempDir(), "ringclock-"+hex.EncodeToString(sum[:16])+".shm")
}
