package midigen

import (
	"bytes"
	"fmt"
)

// Meta event type codes.
const (
	MetaSequenceNumber      byte = 0x00
	MetaText                byte = 0x01
	MetaCopyright           byte = 0x02
	MetaSequenceOrTrackName byte = 0x03
	MetaInstrumentName      byte = 0x04
	MetaLyric               byte = 0x05
	MetaMarker              byte = 0x06
	MetaCuePoint            byte = 0x07
	MetaProgramName         byte = 0x08
	MetaDeviceName          byte = 0x09
	MetaChannelPrefix       byte = 0x20
	MetaPort                byte = 0x21
	MetaEndOfTrack          byte = 0x2F
	MetaTempo               byte = 0x51
	MetaSMPTEOffset         byte = 0x54
	MetaTimeSignature       byte = 0x58
	MetaKeySignature        byte = 0x59
	MetaSequencerSpecific   byte = 0x7F
)

// metaFrame writes the framing every meta event shares: the 0xFF marker, the
// type code, a one-byte payload length, then the payload itself.
func metaFrame(buf *bytes.Buffer, typeCode byte, payload []byte) {
	buf.WriteByte(0xFF)
	buf.WriteByte(typeCode)
	buf.WriteByte(byte(len(payload)))
	buf.Write(payload)
}

// TextEvent is any of the text-carrying meta kinds; Type selects which one.
type TextEvent struct {
	Type byte
	Text string
}

func (e TextEvent) encode(buf *bytes.Buffer) {
	metaFrame(buf, e.Type, []byte(e.Text))
}

// ChannelPrefix associates the following events with a MIDI channel.
type ChannelPrefix struct {
	Channel byte
}

func (e ChannelPrefix) encode(buf *bytes.Buffer) {
	metaFrame(buf, MetaChannelPrefix, []byte{e.Channel})
}

// Port names the output port for the following events.
type Port struct {
	Port byte
}

func (e Port) encode(buf *bytes.Buffer) {
	metaFrame(buf, MetaPort, []byte{e.Port})
}

// EndOfTrack terminates a track body. Its payload length is always zero.
type EndOfTrack struct{}

func (EndOfTrack) encode(buf *bytes.Buffer) {
	metaFrame(buf, MetaEndOfTrack, nil)
}

// Tempo sets the pace in microseconds per quarter note, stored as a 24-bit
// big-endian value.
type Tempo struct {
	Microseconds uint32
}

func (e Tempo) encode(buf *bytes.Buffer) {
	metaFrame(buf, MetaTempo, []byte{
		byte(e.Microseconds >> 16),
		byte(e.Microseconds >> 8),
		byte(e.Microseconds),
	})
}

// TimeSignature carries the numerator, the denominator as a power-of-two
// exponent, MIDI clocks per metronome click, and notated 32nd notes per
// quarter note.
type TimeSignature struct {
	Numerator      byte
	Denominator    byte
	ClocksPerClick byte
	ThirtySeconds  byte
}

func (e TimeSignature) encode(buf *bytes.Buffer) {
	metaFrame(buf, MetaTimeSignature, []byte{e.Numerator, e.Denominator, e.ClocksPerClick, e.ThirtySeconds})
}

// KeySignature carries the signed count of sharps (positive) or flats
// (negative) and whether the key is minor.
type KeySignature struct {
	SharpsFlats int8
	Minor       byte
}

func (e KeySignature) encode(buf *bytes.Buffer) {
	metaFrame(buf, MetaKeySignature, []byte{byte(e.SharpsFlats), e.Minor})
}

// SequenceNumber is the optional sequence index meta event.
type SequenceNumber struct {
	Number uint16
}

func (e SequenceNumber) encode(buf *bytes.Buffer) {
	metaFrame(buf, MetaSequenceNumber, []byte{byte(e.Number >> 8), byte(e.Number)})
}

// SMPTEOffset is the timecode at which the track is meant to start.
type SMPTEOffset struct {
	Hour     byte
	Minute   byte
	Second   byte
	Frame    byte
	SubFrame byte
}

func (e SMPTEOffset) encode(buf *bytes.Buffer) {
	metaFrame(buf, MetaSMPTEOffset, []byte{e.Hour, e.Minute, e.Second, e.Frame, e.SubFrame})
}

// SequencerSpecific carries opaque sequencer data.
type SequencerSpecific struct {
	Data []byte
}

func (e SequencerSpecific) encode(buf *bytes.Buffer) {
	metaFrame(buf, MetaSequencerSpecific, e.Data)
}

// Timing-category meta kinds, the only kinds legal in a global tempo track.
var timingMetaKinds = []byte{
	MetaMarker,
	MetaCuePoint,
	MetaTempo,
	MetaSMPTEOffset,
	MetaTimeSignature,
	MetaKeySignature,
}

// Track-scoped meta kinds, legal outside the global tempo track.
var trackMetaKinds = []byte{
	MetaText,
	MetaSequenceOrTrackName,
	MetaInstrumentName,
	MetaLyric,
	MetaProgramName,
	MetaChannelPrefix,
	MetaPort,
	MetaSequenceNumber,
	MetaCopyright,
	MetaDeviceName,
	MetaSequencerSpecific,
}

// allMetaKinds is the union drawn from by single-track and independent-track
// formats.
var allMetaKinds = append(append([]byte{}, timingMetaKinds...), trackMetaKinds...)

// metaEvent builds one meta event of the given kind with random content. The
// declared length byte always matches the payload by construction.
func (g *Generator) metaEvent(kind byte) Event {
	switch kind {
	case MetaText, MetaSequenceOrTrackName, MetaInstrumentName, MetaLyric,
		MetaProgramName, MetaMarker, MetaCuePoint, MetaCopyright, MetaDeviceName:
		return TextEvent{Type: kind, Text: g.text()}
	case MetaChannelPrefix:
		return ChannelPrefix{Channel: byte(g.uniform(0, 16))}
	case MetaPort:
		return Port{Port: g.dataByte()}
	case MetaEndOfTrack:
		return EndOfTrack{}
	case MetaTempo:
		return Tempo{Microseconds: uint32(g.uniform(100000, 5000000))}
	case MetaTimeSignature:
		return TimeSignature{
			Numerator:      byte(g.uniform(1, 33)),
			Denominator:    byte(g.uniform(0, 7)),
			ClocksPerClick: byte(g.uniform(1, 65)),
			ThirtySeconds:  8,
		}
	case MetaKeySignature:
		return KeySignature{
			SharpsFlats: int8(g.uniform(-7, 8)),
			Minor:       byte(g.uniform(0, 2)),
		}
	case MetaSequenceNumber:
		return SequenceNumber{Number: uint16(g.uniform(0, 1<<16))}
	case MetaSMPTEOffset:
		return SMPTEOffset{
			Hour:     byte(g.uniform(0, 24)),
			Minute:   byte(g.uniform(0, 60)),
			Second:   byte(g.uniform(0, 60)),
			Frame:    byte(g.uniform(0, 30)),
			SubFrame: byte(g.uniform(0, 100)),
		}
	case MetaSequencerSpecific:
		data := make([]byte, g.uniform(1, 50))
		for i := range data {
			data[i] = byte(g.uniform(0, 256))
		}
		return SequencerSpecific{Data: data}
	}
	panic(fmt.Sprintf("midigen: unknown meta kind 0x%02X", kind))
}

// mandatoryMetaEvents builds the triad every full tempo map must carry:
// Tempo, TimeSignature and KeySignature, in that order.
func (g *Generator) mandatoryMetaEvents() []Event {
	return []Event{
		g.metaEvent(MetaTempo),
		g.metaEvent(MetaTimeSignature),
		g.metaEvent(MetaKeySignature),
	}
}

func (g *Generator) randomTimingMeta() Event {
	return g.metaEvent(timingMetaKinds[g.uniform(0, len(timingMetaKinds))])
}

func (g *Generator) randomTrackMeta() Event {
	return g.metaEvent(trackMetaKinds[g.uniform(0, len(trackMetaKinds))])
}

func (g *Generator) randomMeta() Event {
	return g.metaEvent(allMetaKinds[g.uniform(0, len(allMetaKinds))])
}
