package midigen

import (
	"bytes"
	"encoding/binary"
)

type trackState int

const (
	trackEmpty trackState = iota
	trackAccumulating
	trackFinalized
)

// TrackBuilder accumulates (delta-time, event) pairs into an MTrk body.
// Appending an EndOfTrack event finalizes the builder; appending anything
// after that is a contract violation. The zero value is ready to use.
type TrackBuilder struct {
	state trackState
	body  bytes.Buffer
}

// Append adds one delta-timed event to the track body.
func (b *TrackBuilder) Append(dt DeltaTime, ev Event) {
	if b.state == trackFinalized {
		panic("midigen: append to a finalized track")
	}
	b.body.Write(dt)
	ev.encode(&b.body)
	if _, ok := ev.(EndOfTrack); ok {
		b.state = trackFinalized
	} else {
		b.state = trackAccumulating
	}
}

// Finalized reports whether an EndOfTrack pair has been appended.
func (b *TrackBuilder) Finalized() bool {
	return b.state == trackFinalized
}

// Finalize appends the terminal end-of-track pair at delta-time zero and
// returns the frozen chunk.
func (b *TrackBuilder) Finalize() Track {
	b.Append(DeltaTime{0x00}, EndOfTrack{})
	return b.Track()
}

// Track freezes the accumulated body into an immutable chunk. It panics when
// the builder has not seen its EndOfTrack pair.
func (b *TrackBuilder) Track() Track {
	if b.state != trackFinalized {
		panic("midigen: track not finalized")
	}
	return Track{body: append([]byte(nil), b.body.Bytes()...)}
}

// Track is a finalized MTrk chunk.
type Track struct {
	body []byte
}

// Len returns the body byte count, the value of the chunk length field.
func (t Track) Len() int {
	return len(t.body)
}

// Bytes serializes the chunk: identifier, big-endian body length, body.
func (t Track) Bytes() []byte {
	buf := make([]byte, 0, 8+len(t.body))
	buf = append(buf, "MTrk"...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(t.body)))
	return append(buf, t.body...)
}
