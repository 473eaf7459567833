package midigen

import (
	"encoding/binary"
	"testing"
)

func TestHeaderIsFourteenBytes(t *testing.T) {
	h := New(WithSeed(1)).Header()
	if got := len(h.Bytes()); got != 14 {
		t.Fatalf("header serialized to %d bytes, want 14", got)
	}
}

func checkDivision(t *testing.T, d Division) {
	t.Helper()
	if d.Metrical() {
		if d.TicksPerQuarterNote() != 96 {
			t.Fatalf("metrical division has %d ticks per quarter note", d.TicksPerQuarterNote())
		}
		return
	}
	code, sub := d.SMPTE()
	switch code {
	case 0xE8, 0xE7, 0xE3, 0xE2:
	default:
		t.Fatalf("frame-rate code 0x%02X", code)
	}
	switch sub {
	case 4, 8, 10, 80, 100:
	default:
		t.Fatalf("sub-frame resolution %d", sub)
	}
}

func TestHeaderInvariants(t *testing.T) {
	g := New(WithSeed(2))
	for i := 0; i < 100; i++ {
		h := g.Header()
		b := h.Bytes()
		if string(b[:4]) != "MThd" {
			t.Fatalf("identifier %q", b[:4])
		}
		if chunklen := binary.BigEndian.Uint32(b[4:8]); chunklen != 6 {
			t.Fatalf("chunk length %d", chunklen)
		}
		if h.Format > 2 {
			t.Fatalf("format %d", h.Format)
		}
		switch h.Format {
		case 0:
			if h.NumTracks != 1 {
				t.Fatalf("format 0 header with %d tracks", h.NumTracks)
			}
		case 1:
			if h.NumTracks < 2 || h.NumTracks >= 26 {
				t.Fatalf("format 1 header with %d tracks", h.NumTracks)
			}
		case 2:
			if h.NumTracks < 1 || h.NumTracks >= 26 {
				t.Fatalf("format 2 header with %d tracks", h.NumTracks)
			}
		}
		if got := binary.BigEndian.Uint16(b[12:14]); got != uint16(h.Division) {
			t.Fatalf("division field %#04x, struct says %#04x", got, uint16(h.Division))
		}
		checkDivision(t, h.Division)
	}
}

func TestThousandForcedFormat1Headers(t *testing.T) {
	g := New(WithSeed(4))
	for i := 0; i < 1000; i++ {
		h := g.headerWithFormat(1)
		if h.Format != 1 {
			t.Fatalf("format %d", h.Format)
		}
		if h.NumTracks < 2 || h.NumTracks >= 26 {
			t.Fatalf("track count %d", h.NumTracks)
		}
		checkDivision(t, h.Division)
	}
}

func TestHeaderRejectsUnknownFormat(t *testing.T) {
	g := testGenerator()
	defer func() {
		if recover() == nil {
			t.Fatal("no panic for format 3")
		}
	}()
	g.headerWithFormat(3)
}

func TestDivisionString(t *testing.T) {
	if s := Division(96).String(); s != "96 ppqn" {
		t.Fatalf("String() = %q", s)
	}
	d := Division(uint16(0xE7)<<8 | 80)
	if s := d.String(); s != "25 fps / 80 sub-frames" {
		t.Fatalf("String() = %q", s)
	}
}
