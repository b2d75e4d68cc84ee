package hclust

import (
	"math/rand"
	"testing"
)

func compareIntSlices(t *testing.T, name string, want, got []int) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("%s length: want=%d, got=%d", name, len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("%s = %v, want %v", name, got, want)
			return
		}
	}
}

// TestCutFixtureSingle pins cut results on the single-linkage fixture
// tree (heights 1, 1, 3, 4).
func TestCutFixtureSingle(t *testing.T) {
	d, err := Agglomerate(fixtureMatrix(t), MethodSingle)
	if err != nil {
		t.Fatalf("Agglomerate: %v", err)
	}

	tests := []struct {
		name string
		opts CutOptions
		want []int
	}{
		{"k=1 h=max", DefaultCutOptions(d), []int{1, 1, 1, 1, 1}},
		{"k=2", CutOptions{K: 2, H: 4}, []int{1, 1, 1, 1, 2}},
		{"k=n", CutOptions{K: 5, H: 4}, []int{1, 2, 3, 4, 5}},
		{"k>n", CutOptions{K: 7, H: 4}, []int{1, 2, 3, 4, 5}},
		{"h=0", CutOptions{K: 1, H: 0}, []int{1, 2, 3, 4, 5}},
		{"h between heights", CutOptions{K: 1, H: 2.5}, []int{1, 1, 1, 2, 3}},
		{"both bounds", CutOptions{K: 4, H: 4}, []int{1, 1, 2, 3, 4}},
		{"h stops before k", CutOptions{K: 1, H: 3}, []int{1, 1, 1, 1, 2}},
		{"k below 1 treated as 1", CutOptions{K: 0, H: 4}, []int{1, 1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compareIntSlices(t, "cut", tt.want, d.Cut(tt.opts))
		})
	}
}

func TestCutKAndCutH(t *testing.T) {
	d, err := Agglomerate(fixtureMatrix(t), MethodSingle)
	if err != nil {
		t.Fatalf("Agglomerate: %v", err)
	}
	compareIntSlices(t, "CutK(2)", []int{1, 1, 1, 1, 2}, d.CutK(2))
	compareIntSlices(t, "CutH(1)", []int{1, 1, 1, 2, 3}, d.CutH(1))
}

// TestCutNumberingConvention checks the partition-id convention on a
// tree that splits into two executed subtrees: partitions born from
// executed merges are numbered in merge order before untouched leaves.
func TestCutNumberingConvention(t *testing.T) {
	d, err := Agglomerate(fixtureMatrix(t), MethodComplete)
	if err != nil {
		t.Fatalf("Agglomerate: %v", err)
	}
	// Complete-linkage merges: (-2,-1,1), (-3,1,2), (-5,-4,4), (2,3,9).
	// k=2 executes the first three: {0,1,2} forms first, {3,4} second.
	compareIntSlices(t, "cut", []int{1, 1, 1, 2, 2}, d.CutK(2))

	// k=3 executes two merges: {0,1,2} then singletons 3 and 4 in
	// leaf-index order.
	compareIntSlices(t, "cut", []int{1, 1, 1, 2, 3}, d.CutK(3))
}

// TestCutProperties checks the endpoint identities on random trees for
// every method: k=n and h below the minimum height give singletons,
// k=1 at h=max gives one partition.
func TestCutProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	const n = 15
	m := randomSymmetricMatrix(t, rng, n)

	for _, method := range allMethods {
		t.Run(string(method), func(t *testing.T) {
			d, err := Agglomerate(m, method)
			if err != nil {
				t.Fatalf("Agglomerate: %v", err)
			}

			singletons := d.CutK(n)
			for i, p := range singletons {
				if p != i+1 {
					t.Fatalf("CutK(n) = %v, want identity numbering", singletons)
				}
			}

			below := d.CutH(d.Heights[0] / 2)
			for i, p := range below {
				if p != i+1 {
					t.Fatalf("CutH(<min) = %v, want singletons", below)
				}
			}

			one := d.CutK(1)
			for _, p := range one {
				if p != 1 {
					t.Fatalf("CutK(1) = %v, want all 1", one)
				}
			}

			atMax := d.CutH(d.Heights[len(d.Heights)-1])
			for _, p := range atMax {
				if p != 1 {
					t.Fatalf("CutH(max) = %v, want all 1", atMax)
				}
			}
		})
	}
}

func TestCutSingleObservation(t *testing.T) {
	m, err := NewDistanceMatrix([][]float64{{0}})
	if err != nil {
		t.Fatalf("NewDistanceMatrix: %v", err)
	}
	d, err := Agglomerate(m, MethodAverage)
	if err != nil {
		t.Fatalf("Agglomerate: %v", err)
	}
	compareIntSlices(t, "cut", []int{1}, d.Cut(DefaultCutOptions(d)))
}
