package hclust

import (
	"strings"
	"testing"
)

func TestClusterIDAccessors(t *testing.T) {
	tests := []struct {
		id     ClusterID
		isLeaf bool
		index  int
	}{
		{Leaf(0), true, 0},
		{Leaf(4), true, 4},
		{Step(1), false, 1},
		{Step(7), false, 7},
	}

	for _, tt := range tests {
		if got := tt.id.IsLeaf(); got != tt.isLeaf {
			t.Errorf("(%d).IsLeaf() = %v, want %v", tt.id, got, tt.isLeaf)
		}
		if tt.isLeaf {
			if got := tt.id.LeafIndex(); got != tt.index {
				t.Errorf("(%d).LeafIndex() = %d, want %d", tt.id, got, tt.index)
			}
		} else {
			if got := tt.id.StepNumber(); got != tt.index {
				t.Errorf("(%d).StepNumber() = %d, want %d", tt.id, got, tt.index)
			}
		}
	}

	// The signed encoding itself is the external contract.
	if Leaf(0) != -1 || Leaf(2) != -3 || Step(3) != 3 {
		t.Fatal("signed encoding broken")
	}
}

func TestLeafOrder(t *testing.T) {
	tests := []struct {
		name  string
		steps []MergeStep
		n     int
		want  []int
	}{
		{
			name: "no merges",
			n:    1,
			want: []int{0},
		},
		{
			name:  "two leaves",
			steps: []MergeStep{{Leaf(1), Leaf(0), 1}},
			n:     2,
			want:  []int{1, 0},
		},
		{
			name: "leaf joins aggregate",
			steps: []MergeStep{
				{Leaf(1), Leaf(0), 1},
				{Leaf(2), Step(1), 2},
			},
			n:    3,
			want: []int{2, 1, 0},
		},
		{
			name: "two aggregates",
			steps: []MergeStep{
				{Leaf(1), Leaf(0), 1},
				{Leaf(3), Leaf(2), 2},
				{Step(1), Step(2), 3},
			},
			n:    4,
			want: []int{1, 0, 3, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := leafOrder(tt.steps, tt.n)
			compareIntSlices(t, "order", tt.want, got)
		})
	}
}

func TestDendrogramString(t *testing.T) {
	d, err := Agglomerate(fixtureMatrix(t), MethodWard1)
	if err != nil {
		t.Fatalf("Agglomerate: %v", err)
	}
	out := d.String()
	if !strings.Contains(out, "ward1") {
		t.Errorf("rendering misses method tag:\n%s", out)
	}
	if strings.Count(out, "\n") != 5 {
		t.Errorf("want header plus 4 merge lines:\n%s", out)
	}
}
