// Package projection converts the user-post bipartite graph into a
// user-similarity graph. The central idea is a single dense matrix multiply:
// the 0/1 incidence matrix times its transpose yields shared-post counts for
// all user pairs at once, which are then filtered by a k-threshold into a
// sparse undirected graph.
//
// The incidence matrix costs O(users * posts) memory and the product
// O(users^2); this bounds the feasible network size for this design and is a
// documented scalability limit, not a bug.
package projection

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/network"
)

// ErrInvalidThreshold indicates a k-threshold below 1. A threshold of zero
// would mark disconnected pairs as "connected", which contradicts the
// shared-interest semantics of the projection.
var ErrInvalidThreshold = errors.New("projection: k_threshold must be >= 1")

// Info describes the matrices produced by a projection.
type Info struct {
	NumUsers         int     `json:"n_users"`
	NumPosts         int     `json:"n_posts"`
	KThreshold       int     `json:"k_threshold"`
	TotalComments    int     `json:"total_comments"`
	EdgesCreated     int     `json:"edges_created"`
	MaxPossibleEdges int     `json:"total_possible_edges"`
	Density          float64 `json:"density"`
	AvgPostsPerUser  float64 `json:"avg_posts_per_user"`
	MaxSharedPosts   int     `json:"max_shared_posts"`
}

// Graph is the projected user-similarity graph: undirected, weighted by
// shared-post count, no self-loops. Every user appears as a node even when
// isolated. Users are indexed in sorted-name order.
type Graph struct {
	users []string
	index map[string]int
	adj   []map[int]int // symmetric neighbor -> weight
	edges int
}

func newGraph(users []string) *Graph {
	g := &Graph{
		users: users,
		index: make(map[string]int, len(users)),
		adj:   make([]map[int]int, len(users)),
	}
	for i, u := range users {
		g.index[u] = i
		g.adj[i] = make(map[int]int)
	}
	return g
}

func (g *Graph) setEdge(i, j, weight int) {
	if i == j {
		return
	}
	if _, ok := g.adj[i][j]; !ok {
		g.edges++
	}
	g.adj[i][j] = weight
	g.adj[j][i] = weight
}

// NumNodes returns the user count.
func (g *Graph) NumNodes() int { return len(g.users) }

// NumEdges returns the undirected edge count.
func (g *Graph) NumEdges() int { return g.edges }

// Users returns the node names in index (sorted) order.
func (g *Graph) Users() []string {
	out := make([]string, len(g.users))
	copy(out, g.users)
	return out
}

// Weight returns the shared-post count between two users, if connected.
func (g *Graph) Weight(u, v string) (int, bool) {
	i, okI := g.index[u]
	j, okJ := g.index[v]
	if !okI || !okJ {
		return 0, false
	}
	w, ok := g.adj[i][j]
	return w, ok
}

// Neighbors returns the sorted neighbor names of a user.
func (g *Graph) Neighbors(u string) []string {
	i, ok := g.index[u]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(g.adj[i]))
	for j := range g.adj[i] {
		out = append(out, g.users[j])
	}
	sort.Strings(out)
	return out
}

// Degree returns the neighbor count of a user.
func (g *Graph) Degree(u string) int {
	i, ok := g.index[u]
	if !ok {
		return 0
	}
	return len(g.adj[i])
}

// EdgeWeights returns the weight of every edge, one entry per unordered pair.
func (g *Graph) EdgeWeights() []int {
	out := make([]int, 0, g.edges)
	for i := range g.adj {
		for j, w := range g.adj[i] {
			if i < j {
				out = append(out, w)
			}
		}
	}
	return out
}

// Project builds the incidence matrix of the bipartite graph, computes the
// shared-content matrix via Incidence * Incidence^T, and materializes the
// k-thresholded projected graph from the strict upper triangle.
//
// The returned shared matrix is the full symmetric product: its diagonal is
// each user's total post count and it is NOT threshold-filtered; filtering
// applies only to the projected graph's edges.
func Project(b *network.BipartiteGraph, kThreshold int) (*Graph, *mat.Dense, Info, error) {
	if kThreshold < 1 {
		return nil, nil, Info{}, fmt.Errorf("%w: got %d", ErrInvalidThreshold, kThreshold)
	}

	users := b.SortedUsers()
	posts := b.SortedPostIDs()
	nUsers, nPosts := len(users), len(posts)

	postIndex := make(map[string]int, nPosts)
	for i, p := range posts {
		postIndex[p] = i
	}

	incidence := mat.NewDense(nUsers, nPosts, nil)
	totalComments := 0
	for i, user := range users {
		for _, post := range b.PostsOf(user) {
			incidence.Set(i, postIndex[post], 1)
			totalComments++
		}
	}

	shared := mat.NewDense(nUsers, nUsers, nil)
	shared.Mul(incidence, incidence.T())

	g := newGraph(users)
	maxShared := 0
	for i := 0; i < nUsers; i++ {
		for j := i + 1; j < nUsers; j++ {
			w := int(shared.At(i, j))
			if w > maxShared {
				maxShared = w
			}
			if w >= kThreshold {
				g.setEdge(i, j, w)
			}
		}
	}

	maxPossible := nUsers * (nUsers - 1) / 2
	info := Info{
		NumUsers:         nUsers,
		NumPosts:         nPosts,
		KThreshold:       kThreshold,
		TotalComments:    totalComments,
		EdgesCreated:     g.NumEdges(),
		MaxPossibleEdges: maxPossible,
		MaxSharedPosts:   maxShared,
	}
	if maxPossible > 0 {
		info.Density = float64(g.NumEdges()) / float64(maxPossible)
	}
	if nUsers > 0 {
		info.AvgPostsPerUser = float64(totalComments) / float64(nUsers)
	}
	return g, shared, info, nil
}
