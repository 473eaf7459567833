package midigen

import (
	"bytes"
	"fmt"
)

// Channel-voice status bytes, upper nibble. The lower nibble carries the
// channel number.
const (
	statusNoteOff            byte = 0x80
	statusNoteOn             byte = 0x90
	statusPolyphonicPressure byte = 0xA0
	statusController         byte = 0xB0
	statusProgramChange      byte = 0xC0
	statusChannelPressure    byte = 0xD0
	statusPitchBend          byte = 0xE0
)

// Event is one track occurrence: a channel-voice event or a meta event. The
// set of cases is fixed by the MIDI 1.0 file format; system-exclusive events
// exist in the format but are never generated.
type Event interface {
	encode(buf *bytes.Buffer)
}

// NoteOff releases a key on a channel.
type NoteOff struct {
	Channel  byte
	Key      byte
	Velocity byte
}

func (e NoteOff) encode(buf *bytes.Buffer) {
	buf.WriteByte(statusNoteOff | e.Channel)
	buf.WriteByte(e.Key)
	buf.WriteByte(e.Velocity)
}

// NoteOn sounds a key on a channel.
type NoteOn struct {
	Channel  byte
	Key      byte
	Velocity byte
}

func (e NoteOn) encode(buf *bytes.Buffer) {
	buf.WriteByte(statusNoteOn | e.Channel)
	buf.WriteByte(e.Key)
	buf.WriteByte(e.Velocity)
}

// PolyphonicPressure changes the aftertouch of one held key.
type PolyphonicPressure struct {
	Channel  byte
	Key      byte
	Pressure byte
}

func (e PolyphonicPressure) encode(buf *bytes.Buffer) {
	buf.WriteByte(statusPolyphonicPressure | e.Channel)
	buf.WriteByte(e.Key)
	buf.WriteByte(e.Pressure)
}

// Controller sets a continuous controller to a value.
type Controller struct {
	Channel byte
	Number  byte
	Value   byte
}

func (e Controller) encode(buf *bytes.Buffer) {
	buf.WriteByte(statusController | e.Channel)
	buf.WriteByte(e.Number)
	buf.WriteByte(e.Value)
}

// ProgramChange selects the sounding program. One data byte.
type ProgramChange struct {
	Channel byte
	Program byte
}

func (e ProgramChange) encode(buf *bytes.Buffer) {
	buf.WriteByte(statusProgramChange | e.Channel)
	buf.WriteByte(e.Program)
}

// ChannelPressure changes the aftertouch of the whole channel. One data
// byte.
type ChannelPressure struct {
	Channel  byte
	Pressure byte
}

func (e ChannelPressure) encode(buf *bytes.Buffer) {
	buf.WriteByte(statusChannelPressure | e.Channel)
	buf.WriteByte(e.Pressure)
}

// PitchBend adjusts the channel pitch wheel. LSB and MSB each carry seven
// bits.
type PitchBend struct {
	Channel byte
	LSB     byte
	MSB     byte
}

func (e PitchBend) encode(buf *bytes.Buffer) {
	buf.WriteByte(statusPitchBend | e.Channel)
	buf.WriteByte(e.LSB)
	buf.WriteByte(e.MSB)
}

// voiceKinds enumerates the channel-voice families for random selection.
var voiceKinds = []byte{
	statusNoteOff,
	statusNoteOn,
	statusPolyphonicPressure,
	statusController,
	statusProgramChange,
	statusChannelPressure,
	statusPitchBend,
}

// voiceEvent builds one channel-voice event of the given family with a
// random channel and random data bytes. ProgramChange and ChannelPressure
// take one data byte, every other family two.
func (g *Generator) voiceEvent(kind byte) Event {
	ch := byte(g.uniform(0, 16))
	switch kind {
	case statusNoteOff:
		return NoteOff{Channel: ch, Key: g.dataByte(), Velocity: g.dataByte()}
	case statusNoteOn:
		return NoteOn{Channel: ch, Key: g.dataByte(), Velocity: g.dataByte()}
	case statusPolyphonicPressure:
		return PolyphonicPressure{Channel: ch, Key: g.dataByte(), Pressure: g.dataByte()}
	case statusController:
		return Controller{Channel: ch, Number: g.dataByte(), Value: g.dataByte()}
	case statusProgramChange:
		return ProgramChange{Channel: ch, Program: g.dataByte()}
	case statusChannelPressure:
		return ChannelPressure{Channel: ch, Pressure: g.dataByte()}
	case statusPitchBend:
		return PitchBend{Channel: ch, LSB: g.dataByte(), MSB: g.dataByte()}
	}
	panic(fmt.Sprintf("midigen: unknown channel-voice kind 0x%02X", kind))
}

func (g *Generator) randomVoiceEvent() Event {
	return g.voiceEvent(voiceKinds[g.uniform(0, len(voiceKinds))])
}
