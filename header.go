package midigen

import (
	"encoding/binary"
	"fmt"
)

// headerChunkLength is the MThd payload size, fixed by the format.
const headerChunkLength = 6

// ticksPerQuarterNote is the metrical resolution every generated file uses.
const ticksPerQuarterNote = 96

// SMPTE frame-rate codes (negative frame counts in two's complement) and the
// sub-frame resolutions that may accompany them.
var (
	smpteFrameCodes = []byte{0xE8, 0xE7, 0xE3, 0xE2} // 24, 25, 29, 30 fps
	smpteSubFrames  = []byte{4, 8, 10, 80, 100}
)

// Division is the MThd tick-division field. Bit 15 clear selects metrical
// timing with ticks per quarter note in the low 15 bits; bit 15 set selects
// timecode timing with the SMPTE frame-rate code in the high byte and the
// sub-frame resolution in the low byte.
type Division uint16

// Metrical reports whether the division uses metrical timing.
func (d Division) Metrical() bool {
	return d&0x8000 == 0
}

// TicksPerQuarterNote returns the metrical resolution, or zero for timecode
// divisions.
func (d Division) TicksPerQuarterNote() uint16 {
	if !d.Metrical() {
		return 0
	}
	return uint16(d) & 0x7FFF
}

// SMPTE returns the timecode frame-rate code and sub-frame resolution, or
// zeros for metrical divisions.
func (d Division) SMPTE() (frameCode, subFrames byte) {
	if d.Metrical() {
		return 0, 0
	}
	return byte(d >> 8), byte(d)
}

func (d Division) String() string {
	if d.Metrical() {
		return fmt.Sprintf("%d ppqn", d.TicksPerQuarterNote())
	}
	code, sub := d.SMPTE()
	return fmt.Sprintf("%d fps / %d sub-frames", -int8(code), sub)
}

// Header is the file-level MThd chunk.
type Header struct {
	Format    uint16
	NumTracks uint16
	Division  Division
}

// Bytes serializes the 14-byte MThd chunk: identifier, chunk length, then
// three big-endian 16-bit fields.
func (h Header) Bytes() []byte {
	buf := make([]byte, 0, 14)
	buf = append(buf, "MThd"...)
	buf = binary.BigEndian.AppendUint32(buf, headerChunkLength)
	buf = binary.BigEndian.AppendUint16(buf, h.Format)
	buf = binary.BigEndian.AppendUint16(buf, h.NumTracks)
	buf = binary.BigEndian.AppendUint16(buf, uint16(h.Division))
	return buf
}

// Header samples a header chunk: a format, a legal track count for that
// format, and a tick division.
func (g *Generator) Header() Header {
	return g.headerWithFormat(uint16(g.uniform(0, 3)))
}

// headerWithFormat samples the rest of a header around an imposed format.
func (g *Generator) headerWithFormat(format uint16) Header {
	var ntracks uint16
	switch format {
	case 0:
		ntracks = 1
	case 1:
		// a global tempo track plus at least one voice track
		ntracks = uint16(g.uniform(2, 26))
	case 2:
		ntracks = uint16(g.uniform(1, 26))
	default:
		panic(fmt.Sprintf("midigen: format %d out of range", format))
	}
	return Header{Format: format, NumTracks: ntracks, Division: g.division()}
}

// division flips between metrical and timecode timing.
func (g *Generator) division() Division {
	if g.uniform(0, 2) == 0 {
		return Division(ticksPerQuarterNote)
	}
	code := smpteFrameCodes[g.uniform(0, len(smpteFrameCodes))]
	sub := smpteSubFrames[g.uniform(0, len(smpteSubFrames))]
	return Division(uint16(code)<<8 | uint16(sub) | 0x8000)
}
