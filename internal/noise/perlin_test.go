package noise

import "testing"

func TestPerlin2ZeroAtLattice(t *testing.T) {
	for _, p := range [][2]float32{{0, 0}, {1, 0}, {3, 7}, {-2, 5}, {255, 256}} {
		if got := Perlin2(p[0], p[1]); got != 0 {
			t.Errorf("Perlin2(%v, %v) = %v, want 0", p[0], p[1], got)
		}
	}
}

func TestPerlin2Deterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		x := float32(i) * 0.173
		y := float32(i) * 0.291
		if a, b := Perlin2(x, y), Perlin2(x, y); a != b {
			t.Fatalf("Perlin2(%v, %v) not deterministic: %v vs %v", x, y, a, b)
		}
	}
}

func TestPerlin2Range(t *testing.T) {
	var varied bool
	first := Perlin2(0.5, 0.5)
	for yi := 0; yi < 64; yi++ {
		for xi := 0; xi < 64; xi++ {
			x := float32(xi)*0.37 - 10
			y := float32(yi)*0.41 - 10
			n := Perlin2(x, y)
			if n < -1.01 || n > 1.01 {
				t.Fatalf("Perlin2(%v, %v) = %v outside [-1, 1]", x, y, n)
			}
			u := Perlin2Unit(x, y)
			if u < 0 || u > 1 {
				t.Fatalf("Perlin2Unit(%v, %v) = %v outside [0, 1]", x, y, u)
			}
			if n != first {
				varied = true
			}
		}
	}
	if !varied {
		t.Error("noise is constant")
	}
}

func TestPermutationIsPermutation(t *testing.T) {
	var seen [256]bool
	for _, v := range permutation {
		if seen[v] {
			t.Fatalf("value %d repeated", v)
		}
		seen[v] = true
	}
}
