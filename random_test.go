package midigen

import (
	"math/rand"
	"testing"
)

func testGenerator() *Generator {
	return New(WithRand(rand.New(rand.NewSource(1))))
}

func TestUniformBounds(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 1000; i++ {
		v := g.uniform(-7, 8)
		if v < -7 || v >= 8 {
			t.Fatalf("uniform(-7,8) = %d", v)
		}
	}
	if v := g.uniform(5, 6); v != 5 {
		t.Fatalf("uniform(5,6) = %d, want 5", v)
	}
}

func TestUniformEmptyRangePanics(t *testing.T) {
	g := testGenerator()
	defer func() {
		if recover() == nil {
			t.Fatal("no panic for an empty range")
		}
	}()
	g.uniform(3, 3)
}

func TestWeightedStaysOnValues(t *testing.T) {
	g := testGenerator()
	seen := make(map[int]int)
	for i := 0; i < 2000; i++ {
		seen[g.weighted([]int{1, 2, 3, 4}, []int{80, 12, 6, 2})]++
	}
	for v := range seen {
		if v < 1 || v > 4 {
			t.Fatalf("weighted returned %d", v)
		}
	}
	if seen[1] <= seen[4] {
		t.Fatalf("weight 80 drew %d times, weight 2 drew %d times", seen[1], seen[4])
	}
}

func TestWeightedMalformedPanics(t *testing.T) {
	g := testGenerator()
	cases := []struct {
		name    string
		values  []int
		weights []int
	}{
		{"empty", nil, nil},
		{"length mismatch", []int{1, 2}, []int{1}},
		{"zero weight", []int{1, 2}, []int{1, 0}},
		{"negative weight", []int{1, 2}, []int{1, -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("no panic")
				}
			}()
			g.weighted(tc.values, tc.weights)
		})
	}
}

func TestTextSampling(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 200; i++ {
		s := g.text()
		if len(s) < 1 || len(s) >= 50 {
			t.Fatalf("text length %d", len(s))
		}
		for _, b := range []byte(s) {
			if b < 32 || b >= 128 {
				t.Fatalf("text byte %d outside the printable range", b)
			}
		}
	}
}

func TestDataByteIsSevenBit(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 1000; i++ {
		if b := g.dataByte(); b&0x80 != 0 {
			t.Fatalf("data byte 0x%02X has the high bit set", b)
		}
	}
}

func TestSeededGeneratorsAgree(t *testing.T) {
	a := New(WithSeed(99))
	b := New(WithSeed(99))
	for i := 0; i < 100; i++ {
		if av, bv := a.uniform(0, 1000), b.uniform(0, 1000); av != bv {
			t.Fatalf("seeded generators diverged: %d != %d", av, bv)
		}
	}
}
