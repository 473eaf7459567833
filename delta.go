package midigen

// DeltaTime is one encoded variable-length quantity as it appears in a track
// body before its event. Every byte except the last carries the continuation
// bit; the last byte has it clear.
type DeltaTime []byte

// Delta-time byte lengths and how often each is drawn. Short encodings
// dominate.
var (
	deltaLengths       = []int{1, 2, 3, 4}
	deltaLengthWeights = []int{80, 12, 6, 2}
)

// DeltaTime samples a syntactically valid delta-time of one to four bytes.
// The bytes form a well-formed VLQ but encode no particular tick value.
func (g *Generator) DeltaTime() DeltaTime {
	n := g.weighted(deltaLengths, deltaLengthWeights)
	dt := make(DeltaTime, 0, 4)
	for i := 1; i < n; i++ {
		dt = append(dt, g.dataByte()|0x80)
	}
	return append(dt, g.dataByte())
}
