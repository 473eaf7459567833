package midigen

import "fmt"

// uniform returns an integer in [low, high).
func (g *Generator) uniform(low, high int) int {
	if low >= high {
		panic(fmt.Sprintf("midigen: uniform range [%d,%d) is empty", low, high))
	}
	return low + g.rng.Intn(high-low)
}

// weighted returns one of values with probability proportional to the
// matching weights entry. Weights must be positive and as many as values.
func (g *Generator) weighted(values, weights []int) int {
	if len(values) == 0 || len(values) != len(weights) {
		panic(fmt.Sprintf("midigen: weighted wants matching non-empty lists, got %d values and %d weights",
			len(values), len(weights)))
	}
	total := 0
	for _, w := range weights {
		if w <= 0 {
			panic(fmt.Sprintf("midigen: weight %d is not positive", w))
		}
		total += w
	}
	n := g.rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return values[i]
		}
		n -= w
	}
	panic("midigen: weighted choice out of range")
}

// dataByte samples a 7-bit data byte.
func (g *Generator) dataByte() byte {
	return byte(g.rng.Intn(128))
}

// text samples a short string of printable ASCII for text-like meta
// payloads.
func (g *Generator) text() string {
	s := make([]byte, g.uniform(1, 50))
	for i := range s {
		s[i] = byte(g.uniform(32, 128))
	}
	return string(s)
}
