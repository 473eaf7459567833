package midigen

import "testing"

func TestDeltaTimeShape(t *testing.T) {
	g := New(WithSeed(42))
	lengths := make(map[int]int)
	for i := 0; i < 5000; i++ {
		dt := g.DeltaTime()
		if len(dt) < 1 || len(dt) > 4 {
			t.Fatalf("delta-time length %d", len(dt))
		}
		lengths[len(dt)]++
		for j, b := range dt[:len(dt)-1] {
			if b&0x80 == 0 {
				t.Fatalf("byte %d of % X is missing its continuation bit", j, dt)
			}
		}
		if dt[len(dt)-1]&0x80 != 0 {
			t.Fatalf("terminator of % X has its continuation bit set", dt)
		}
	}
	if lengths[1] <= lengths[4] {
		t.Fatalf("length distribution inverted: %v", lengths)
	}
}
