package graph

import (
	"fmt"
	"sort"
)

// NodeID addresses a node inside a Chain's arena.
type NodeID int32

// NodeNone is the null node reference.
const NodeNone NodeID = -1

// Node is one search node: the dancer's full placement after the step or
// release that happened at Row. Prev and Next address neighbors in the
// arena, Link records how the node was reached.
type Node struct {
	Row   int
	Time  float64
	State Placement
	Prev  NodeID
	Next  NodeID
	Link  LinkKind
}

// Chain is an arena-backed chain of search nodes ordered by row. Index 0 is
// always the root node at row -1 carrying the StepGraph's default placement,
// so every chain has at least one node and binary search over the arena is
// valid by construction.
type Chain struct {
	nodes []Node
}

// NewChain creates a chain holding only the root node for the given surface.
func NewChain(sg *StepGraph) *Chain {
	return &Chain{nodes: []Node{{
		Row:   -1,
		State: sg.RootPlacement(),
		Prev:  NodeNone,
		Next:  NodeNone,
		Link:  LinkNone,
	}}}
}

// Append adds a node after the current last node. Rows must strictly
// increase; the chain stays acyclic and binary-searchable.
func (c *Chain) Append(row int, time float64, state Placement, link LinkKind) (NodeID, error) {
	last := c.Last()
	if row <= c.nodes[last].Row {
		return NodeNone, fmt.Errorf("chain append at row %d not after row %d", row, c.nodes[last].Row)
	}
	id := NodeID(len(c.nodes))
	c.nodes = append(c.nodes, Node{
		Row:   row,
		Time:  time,
		State: state,
		Prev:  last,
		Next:  NodeNone,
		Link:  link,
	})
	c.nodes[last].Next = id
	return id, nil
}

// Root returns the root node's id.
func (c *Chain) Root() NodeID { return 0 }

// Last returns the id of the highest-row node (the root on an empty chain).
func (c *Chain) Last() NodeID { return NodeID(len(c.nodes) - 1) }

// Len returns the node count including the root.
func (c *Chain) Len() int { return len(c.nodes) }

// Node returns the node for an id. The pointer stays valid until the next
// Append.
func (c *Chain) Node(id NodeID) *Node { return &c.nodes[id] }

// FirstAtOrAfter returns the id of the first node whose row is >= row, or
// NodeNone when every node lies before it.
func (c *Chain) FirstAtOrAfter(row int) NodeID {
	i := sort.Search(len(c.nodes), func(i int) bool { return c.nodes[i].Row >= row })
	if i == len(c.nodes) {
		return NodeNone
	}
	return NodeID(i)
}
