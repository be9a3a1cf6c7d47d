package ringcfg

import (
	"strings"
	"testing"

	"github.com/arolek/ringclock/clock"
)

func TestDecodeOverridesDefaults(t *testing.T) {
	const doc = `{"capacity":64,"items":1000,"clock_kind":"dummy","nice":true,"pin_cpu":2,"runs":3,"mode":"infinite"}`
	cfg, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg.Capacity != 64 || cfg.Items != 1000 || cfg.PinCPU != 2 || cfg.Runs != 3 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.Nice {
		t.Fatal("expected nice=true")
	}
	kind, err := cfg.ClockKindValue()
	if err != nil || kind != clock.Dummy {
		t.Fatalf("ClockKindValue: %v, %v", kind, err)
	}
}

func TestDecodePartialKeepsDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`{"capacity":8}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg.Capacity != 8 {
		t.Fatalf("capacity override failed: %+v", cfg)
	}
	if cfg.ClockKind != "system" {
		t.Fatalf("expected default clock_kind to survive partial decode: %+v", cfg)
	}
}

func TestUnknownClockKindErrors(t *testing.T) {
	cfg := Default()
	cfg.ClockKind = "bogus"
	if _, err := cfg.ClockKindValue(); err == nil {
		t.Fatal("expected an error for an unknown clock_kind")
	}
}
