package network

import (
	"fmt"
	"sort"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/randvar"
)

// PostKind distinguishes viral posts authored by hubs from regular posts.
type PostKind int

const (
	PostRegular PostKind = iota
	PostViral
)

// Post describes a content node in the bipartite graph.
type Post struct {
	ID     string
	Kind   PostKind
	Author string // hub name for viral posts, empty otherwise
}

// BipartiteGraph is the simple undirected user-post engagement graph.
// Edge presence means "user engaged with post"; there are no weights, no
// multi-edges, and by construction no user-user or post-post edges.
type BipartiteGraph struct {
	users     []string // creation order
	posts     []Post   // creation order
	postByID  map[string]int
	byUser    map[string]map[string]struct{} // user -> post IDs
	byPost    map[string]map[string]struct{} // post ID -> users
	edgeCount int
}

// NewBipartiteGraph creates an empty bipartite graph.
func NewBipartiteGraph() *BipartiteGraph {
	return &BipartiteGraph{
		postByID: make(map[string]int),
		byUser:   make(map[string]map[string]struct{}),
		byPost:   make(map[string]map[string]struct{}),
	}
}

// AddUserNode inserts a user-side node. Duplicates are ignored.
func (b *BipartiteGraph) AddUserNode(name string) {
	if _, ok := b.byUser[name]; ok {
		return
	}
	b.users = append(b.users, name)
	b.byUser[name] = make(map[string]struct{})
}

// AddPostNode inserts a post-side node. Duplicates are ignored.
func (b *BipartiteGraph) AddPostNode(p Post) {
	if _, ok := b.postByID[p.ID]; ok {
		return
	}
	b.postByID[p.ID] = len(b.posts)
	b.posts = append(b.posts, p)
	b.byPost[p.ID] = make(map[string]struct{})
}

// AddEngagement records that user engaged with post. Re-adding an existing
// pair is a no-op (the graph is simple).
func (b *BipartiteGraph) AddEngagement(user, postID string) {
	uSet, okU := b.byUser[user]
	pSet, okP := b.byPost[postID]
	if !okU || !okP {
		return
	}
	if _, dup := uSet[postID]; dup {
		return
	}
	uSet[postID] = struct{}{}
	pSet[user] = struct{}{}
	b.edgeCount++
}

// HasEngagement reports whether the user engaged with the post.
func (b *BipartiteGraph) HasEngagement(user, postID string) bool {
	set, ok := b.byUser[user]
	if !ok {
		return false
	}
	_, ok = set[postID]
	return ok
}

// NumUsers returns the user-side node count.
func (b *BipartiteGraph) NumUsers() int { return len(b.users) }

// NumPosts returns the post-side node count.
func (b *BipartiteGraph) NumPosts() int { return len(b.posts) }

// NumEdges returns the engagement count.
func (b *BipartiteGraph) NumEdges() int { return b.edgeCount }

// SortedUsers returns user names in lexicographic order; this is the row
// ordering of every matrix derived from the graph.
func (b *BipartiteGraph) SortedUsers() []string {
	out := make([]string, len(b.users))
	copy(out, b.users)
	sort.Strings(out)
	return out
}

// SortedPostIDs returns post IDs in lexicographic order (matrix columns).
func (b *BipartiteGraph) SortedPostIDs() []string {
	out := make([]string, 0, len(b.posts))
	for _, p := range b.posts {
		out = append(out, p.ID)
	}
	sort.Strings(out)
	return out
}

// PostsOf returns the post IDs a user engaged with, sorted.
func (b *BipartiteGraph) PostsOf(user string) []string {
	set, ok := b.byUser[user]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// PostInfo returns the metadata of a post.
func (b *BipartiteGraph) PostInfo(postID string) (Post, bool) {
	i, ok := b.postByID[postID]
	if !ok {
		return Post{}, false
	}
	return b.posts[i], true
}

// BipartiteConfig tunes the engagement generation.
type BipartiteConfig struct {
	// ViralPostCount caps how many leading hubs author a viral post.
	ViralPostCount int

	// Comment-count ranges, half-open, for hub and regular users.
	HubCommentMin  int
	HubCommentMax  int
	UserCommentMin int
	UserCommentMax int

	// ViralRatio is the fraction of each user's comments aimed at viral
	// posts; the remainder targets regular posts.
	ViralRatio float64
}

// DefaultBipartiteConfig returns the documented defaults.
func DefaultBipartiteConfig() BipartiteConfig {
	return BipartiteConfig{
		ViralPostCount: 5,
		HubCommentMin:  20,
		HubCommentMax:  50,
		UserCommentMin: 1,
		UserCommentMax: 15,
		ViralRatio:     0.7,
	}
}

// BipartiteBuilder generates the user-post engagement graph from an
// interaction graph.
type BipartiteBuilder struct {
	cfg BipartiteConfig
}

// NewBipartiteBuilder creates a builder with the given configuration.
func NewBipartiteBuilder(cfg BipartiteConfig) *BipartiteBuilder {
	return &BipartiteBuilder{cfg: cfg}
}

// Build creates nPosts posts (one viral post per hub among the leading
// hubs, the rest regular) and wires engagement edges: every user draws a
// comment count (hubs from the higher range), splits it between the viral
// and regular pools by ViralRatio, and samples targets without replacement
// within each pool, clipping to pool size. Isolated posts are possible and
// expected. Returns the graph and the post IDs in creation order.
func (bb *BipartiteBuilder) Build(g *InteractionGraph, hubNames []string, nPosts int, src *randvar.Source) (*BipartiteGraph, []string, error) {
	nViral := bb.cfg.ViralPostCount
	if nViral > len(hubNames) {
		nViral = len(hubNames)
	}
	if nPosts < nViral {
		return nil, nil, fmt.Errorf("%w: n_posts=%d viral=%d", ErrTooFewPosts, nPosts, nViral)
	}

	b := NewBipartiteGraph()
	viral := make([]string, 0, nViral)
	for i, hub := range hubNames[:nViral] {
		id := fmt.Sprintf("POST_%s_%d", hub, i)
		b.AddPostNode(Post{ID: id, Kind: PostViral, Author: hub})
		viral = append(viral, id)
	}
	regular := make([]string, 0, nPosts-nViral)
	for i := 0; i < nPosts-nViral; i++ {
		id := fmt.Sprintf("POST_%04d", i)
		b.AddPostNode(Post{ID: id, Kind: PostRegular})
		regular = append(regular, id)
	}

	users := g.Users()
	for _, user := range users {
		b.AddUserNode(user)
	}

	for _, user := range users {
		var nComments int
		if g.IsHub(user) {
			nComments = src.IntRange(bb.cfg.HubCommentMin, bb.cfg.HubCommentMax)
		} else {
			nComments = src.IntRange(bb.cfg.UserCommentMin, bb.cfg.UserCommentMax)
		}
		nViralComments := int(float64(nComments) * bb.cfg.ViralRatio)
		nRegularComments := nComments - nViralComments

		for _, post := range randvar.Sample(src, viral, nViralComments) {
			b.AddEngagement(user, post)
		}
		for _, post := range randvar.Sample(src, regular, nRegularComments) {
			b.AddEngagement(user, post)
		}
	}

	ids := make([]string, 0, nPosts)
	for _, p := range b.posts {
		ids = append(ids, p.ID)
	}
	return b, ids, nil
}
