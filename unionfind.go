package hclust

// unionFind is a disjoint-set forest over the 2n-1 nodes of a dendrogram
// for n observations: leaves occupy indices 0..n-1 and merge steps
// n..2n-2 (step j at index n-1+j). Cutting a tree links both operands of
// an executed merge under the step's own node, so the step node is
// always the set root afterwards.
type unionFind struct {
	parent []int
	n      int
}

func newUnionFind(n int) *unionFind {
	total := 2*n - 1
	if total < 1 {
		total = 1
	}
	parent := make([]int, total)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
	}
	return &unionFind{parent: parent, n: n}
}

// node maps a ClusterID to its union-find index.
func (uf *unionFind) node(c ClusterID) int {
	if c.IsLeaf() {
		return c.LeafIndex()
	}
	return uf.n - 1 + c.StepNumber()
}

// find returns the root of the set containing x, with path compression.
func (uf *unionFind) find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// link attaches the set containing c under the given step node.
func (uf *unionFind) link(c ClusterID, stepNode int) {
	root := uf.find(uf.node(c))
	if root != stepNode {
		uf.parent[root] = stepNode
	}
}
