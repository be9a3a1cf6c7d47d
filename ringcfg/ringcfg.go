// Package ringcfg decodes the JSON configuration consumed by the
// cmd/ringdriver harness. cmd/shmproducer and cmd/shmconsumer take their
// settings from command-line flags instead.
package ringcfg

import (
	"fmt"
	"io"
	"os"

	"github.com/sugawarayuuta/sonnet"

	"github.com/arolek/ringclock/clock"
	"github.com/arolek/ringclock/ringerr"
)

// Config is the on-disk shape of a driver run. ClockKind is decoded as a
// lowercase string ("dummy"|"cycle"|"system") rather than clock.Kind's
// integer encoding, since the file is meant to be hand-edited.
type Config struct {
	Capacity  uint32 `json:"capacity"`
	Items     uint64 `json:"items"`
	ClockKind string `json:"clock_kind"`
	Nice      bool   `json:"nice"`
	PinCPU    int    `json:"pin_cpu"`
	Runs      int    `json:"runs"`
	Mode      string `json:"mode"`
}

// Default mirrors the documented example config, with Runs and Mode
// filled in since older config files predate those two fields.
func Default() Config {
	return Config{
		Capacity:  4096,
		Items:     100_000_000,
		ClockKind: "system",
		Nice:      false,
		PinCPU:    -1,
		Runs:      1,
		Mode:      "spsc",
	}
}

// Load decodes a Config from path using sonnet rather than encoding/json,
// matching the rest of the driver's dependency-heavy stack.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, ringerr.New(ringerr.CodeConfigDecode, "ringcfg.Load", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a Config from r. sonnet is a drop-in, allocation-lighter
// replacement for encoding/json's Unmarshal, so the whole body is read
// up front rather than streamed.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	buf, err := io.ReadAll(r)
	if err != nil {
		return Config{}, ringerr.New(ringerr.CodeConfigDecode, "ringcfg.Decode", err)
	}
	if err := sonnet.Unmarshal(buf, &cfg); err != nil {
		return Config{}, ringerr.New(ringerr.CodeConfigDecode, "ringcfg.Decode", err)
	}
	return cfg, nil
}

// ClockKindValue maps the config's string tag to clock.Kind.
func (c Config) ClockKindValue() (clock.Kind, error) {
	switch c.ClockKind {
	case "", "dummy":
		return clock.Dummy, nil
	case "cycle":
		return clock.Cycle, nil
	case "system":
		return clock.System, nil
	default:
		return 0, fmt.Errorf("ringcfg: unknown clock_kind %q", c.ClockKind)
	}
}
