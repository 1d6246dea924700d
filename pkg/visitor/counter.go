package visitor

import (
	"sort"

	"github.com/joshuapare/adtkit/pkg/ast"
)

// TagStats contains node counts collected by a TagCounter.
type TagStats struct {
	Nodes uint64

	// ByTag counts nodes by their own tag.
	ByTag map[string]uint64

	// ByClass counts nodes under each ancestor class (RootTag included),
	// so ByClass["Exp"] is the number of expression nodes of any kind.
	ByClass map[string]uint64
}

// TagCount is one row of TagStats.Top.
type TagCount struct {
	Tag   string
	Count uint64
}

// Top returns the n most frequent tags, ties broken by name. n <= 0
// returns all of them.
func (s *TagStats) Top(n int) []TagCount {
	rows := make([]TagCount, 0, len(s.ByTag))
	for tag, c := range s.ByTag {
		rows = append(rows, TagCount{tag, c})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Tag < rows[j].Tag
	})
	if n > 0 && n < len(rows) {
		rows = rows[:n]
	}
	return rows
}

// TagCounter counts nodes by tag and class during traversal.
// This is useful for debugging dumps and understanding their shape.
type TagCounter struct {
	*Visitor

	stats TagStats
}

// NewTagCounter creates a counter dispatching over h.
func NewTagCounter(h ast.Hierarchy) *TagCounter {
	tc := &TagCounter{Visitor: New(h)}
	tc.Enter(ast.RootTag, tc.countNode)
	return tc
}

// Count traverses val and returns statistics about every node reachable
// from it.
//
// Example:
//
//	stats := visitor.NewTagCounter(bir.Schema()).Count(proj)
//	fmt.Printf("Total nodes: %d\n", stats.Nodes)
//	fmt.Printf("Blocks: %d\n", stats.ByTag["Blk"])
func (tc *TagCounter) Count(val ast.Value) *TagStats {
	tc.stats = TagStats{
		ByTag:   make(map[string]uint64),
		ByClass: make(map[string]uint64),
	}
	tc.Run(val)
	stats := tc.stats
	return &stats
}

func (tc *TagCounter) countNode(v *Visitor, n *ast.Node) any {
	tc.stats.Nodes++
	tc.stats.ByTag[n.Tag()]++
	chain := v.Hierarchy().Ancestors(n.Tag())
	for _, class := range chain[1:] {
		tc.stats.ByClass[class]++
	}
	return nil
}
