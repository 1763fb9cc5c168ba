package engine

// disjointSet is a union-find structure over integer element indices, used
// by chain detection (C4) to group shape endpoints into connected chains.
// The parent/rank-map shape with path compression and union-by-rank
// mirrors the DSU embedded in the retrieval pack's Kruskal MST
// implementation, adapted here from string vertex IDs to integer shape
// indices.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

// find returns the representative of u's set, compressing the path walked
// to get there.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}
	return u
}

// union merges the sets containing u and v, attaching the lower-rank root
// under the higher-rank one and reports whether a merge happened (false
// if u and v were already in the same set).
func (ds *disjointSet) union(u, v int) bool {
	rootU, rootV := ds.find(u), ds.find(v)
	if rootU == rootV {
		return false
	}
	if ds.rank[rootU] < ds.rank[rootV] {
		ds.parent[rootU] = rootV
	} else {
		ds.parent[rootV] = rootU
		if ds.rank[rootU] == ds.rank[rootV] {
			ds.rank[rootU]++
		}
	}
	return true
}

// groups returns the members of each distinct set, keyed by representative,
// preserving the first-seen order of representatives for deterministic
// chain ordering downstream.
func (ds *disjointSet) groups() [][]int {
	order := make([]int, 0)
	members := make(map[int][]int)
	for i := range ds.parent {
		root := ds.find(i)
		if _, seen := members[root]; !seen {
			order = append(order, root)
		}
		members[root] = append(members[root], i)
	}
	out := make([][]int, len(order))
	for i, root := range order {
		out[i] = members[root]
	}
	return out
}
