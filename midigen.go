// Package midigen generates random, structurally valid Standard MIDI Files.
//
// Every chunk, delta-time and event in the output is syntactically legal
// SMF, but the content is random: the point is to exercise the container
// format, not to produce music.
package midigen

import (
	"bytes"
	"io"
	"math/rand"
	"time"
)

// Generator produces random MIDI files. All sampling goes through the
// generator's own source, so a seeded generator yields a repeatable byte
// stream.
type Generator struct {
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed replaces the default time-based seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand replaces the random source entirely.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// New returns a generator ready to use.
func New(opts ...Option) *Generator {
	g := &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// File is one complete generated MIDI file: a header chunk and the track
// chunks it calls for.
type File struct {
	Header Header
	Tracks []Track
}

// WriteTo serializes the header chunk and every track chunk, in order, to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.Write(f.Header.Bytes())
	for _, t := range f.Tracks {
		buf.Write(t.Bytes())
	}
	return buf.WriteTo(w)
}

// File generates a complete random MIDI file.
func (g *Generator) File() *File {
	return g.fileFor(g.Header())
}

// FileWithFormat generates a file with the SMF format imposed. Track count
// and all content are still random. Formats are 0, 1 and 2.
func (g *Generator) FileWithFormat(format uint16) *File {
	return g.fileFor(g.headerWithFormat(format))
}

// fileFor builds the track list the header calls for. Format 0 is a single
// track carrying every event kind, format 1 is a global tempo track followed
// by voice tracks, format 2 is independent tracks each with an optional
// tempo map of its own.
func (g *Generator) fileFor(h Header) *File {
	f := &File{Header: h, Tracks: make([]Track, 0, h.NumTracks)}
	switch h.Format {
	case 0:
		f.Tracks = append(f.Tracks, g.mixedTrack(true))
	case 1:
		f.Tracks = append(f.Tracks, g.tempoMapTrack())
		for i := uint16(1); i < h.NumTracks; i++ {
			f.Tracks = append(f.Tracks, g.voiceTrack())
		}
	case 2:
		for i := uint16(0); i < h.NumTracks; i++ {
			f.Tracks = append(f.Tracks, g.mixedTrack(g.uniform(0, 2) == 1))
		}
	}
	return f
}

// tempoMapTrack builds the first track of a format 1 file: the mandatory
// triad, then timing-category meta events only. No channel-voice events.
func (g *Generator) tempoMapTrack() Track {
	var b TrackBuilder
	for _, ev := range g.mandatoryMetaEvents() {
		b.Append(g.DeltaTime(), ev)
	}
	n := g.uniform(1, 100)
	for i := 0; i < n; i++ {
		b.Append(g.DeltaTime(), g.randomTimingMeta())
	}
	return b.Finalize()
}

// voiceTrack builds a non-first format 1 track: channel-voice events mixed
// with track-scoped meta events. The tempo-map triad stays in track one.
func (g *Generator) voiceTrack() Track {
	var b TrackBuilder
	n := g.uniform(1, 100)
	for i := 0; i < n; i++ {
		if g.uniform(0, 2) == 0 {
			b.Append(g.DeltaTime(), g.randomVoiceEvent())
		} else {
			b.Append(g.DeltaTime(), g.randomTrackMeta())
		}
	}
	return b.Finalize()
}

// mixedTrack builds a track where any event kind may appear, as used by
// formats 0 and 2. withTempoMap prepends the mandatory triad.
func (g *Generator) mixedTrack(withTempoMap bool) Track {
	var b TrackBuilder
	if withTempoMap {
		for _, ev := range g.mandatoryMetaEvents() {
			b.Append(g.DeltaTime(), ev)
		}
	}
	n := g.uniform(1, 100)
	for i := 0; i < n; i++ {
		if g.uniform(0, 2) == 0 {
			b.Append(g.DeltaTime(), g.randomVoiceEvent())
		} else {
			b.Append(g.DeltaTime(), g.randomMeta())
		}
	}
	return b.Finalize()
}

// Generate writes one random MIDI file from the generator to out.
func Generate(g *Generator, out io.Writer) error {
	_, err := g.File().WriteTo(out)
	return err
}
