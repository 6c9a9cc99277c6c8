package graph

import "testing"

// TestChainRoot verifies the seeded root node and default placement
func TestChainRoot(t *testing.T) {
	ch := NewChain(DanceSingle())

	if ch.Len() != 1 {
		t.Fatalf("Expected 1 node, got %d", ch.Len())
	}
	root := ch.Node(ch.Root())
	if root.Row != -1 {
		t.Errorf("Expected root at row -1, got %d", root.Row)
	}
	if root.Prev != NodeNone || root.Next != NodeNone {
		t.Errorf("Expected unlinked root, got prev=%d next=%d", root.Prev, root.Next)
	}
	if root.Link != LinkNone {
		t.Errorf("Expected LinkNone on root, got %v", root.Link)
	}
	if root.State[Left][Heel].Arrow != 0 || root.State[Right][Heel].Arrow != 3 {
		t.Errorf("Expected default heels on 0/3, got %d/%d",
			root.State[Left][Heel].Arrow, root.State[Right][Heel].Arrow)
	}
	if root.State[Left][Toe].Arrow != ArrowNone || root.State[Right][Toe].Arrow != ArrowNone {
		t.Error("Expected unplaced toes on root")
	}
}

// TestChainAppend verifies linking and the strict row-order guard
func TestChainAppend(t *testing.T) {
	sg := DanceSingle()
	ch := NewChain(sg)

	a, err := ch.Append(10, 0.5, sg.RootPlacement(), LinkStep)
	if err != nil {
		t.Fatalf("Expected append at row 10 to succeed, got %v", err)
	}
	b, err := ch.Append(20, 1.0, sg.RootPlacement(), LinkRelease)
	if err != nil {
		t.Fatalf("Expected append at row 20 to succeed, got %v", err)
	}

	if ch.Node(ch.Root()).Next != a {
		t.Errorf("Expected root.Next=%d, got %d", a, ch.Node(ch.Root()).Next)
	}
	if ch.Node(a).Prev != ch.Root() || ch.Node(a).Next != b {
		t.Errorf("Expected node %d linked root<->%d, got prev=%d next=%d",
			a, b, ch.Node(a).Prev, ch.Node(a).Next)
	}
	if ch.Node(b).Next != NodeNone {
		t.Errorf("Expected open tail, got next=%d", ch.Node(b).Next)
	}
	if ch.Last() != b {
		t.Errorf("Expected last=%d, got %d", b, ch.Last())
	}

	if _, err := ch.Append(20, 1.0, sg.RootPlacement(), LinkStep); err == nil {
		t.Error("Expected append at duplicate row to fail")
	}
	if _, err := ch.Append(15, 0.7, sg.RootPlacement(), LinkStep); err == nil {
		t.Error("Expected append at earlier row to fail")
	}
}

// TestChainFirstAtOrAfter verifies binary search over the arena
func TestChainFirstAtOrAfter(t *testing.T) {
	sg := DanceSingle()
	ch := NewChain(sg)
	for _, row := range []int{10, 20, 30} {
		if _, err := ch.Append(row, 0, sg.RootPlacement(), LinkStep); err != nil {
			t.Fatalf("Expected append to succeed, got %v", err)
		}
	}

	cases := []struct {
		row  int
		want NodeID
	}{
		{-5, 0}, // root at row -1
		{0, 1},
		{10, 1},
		{11, 2},
		{30, 3},
		{31, NodeNone},
	}
	for _, c := range cases {
		if got := ch.FirstAtOrAfter(c.row); got != c.want {
			t.Errorf("Expected FirstAtOrAfter(%d)=%d, got %d", c.row, c.want, got)
		}
	}
}

// TestStepGraphNew verifies surface validation
func TestStepGraphNew(t *testing.T) {
	if _, err := New("ok", 4, 0, 3); err != nil {
		t.Errorf("Expected valid surface, got %v", err)
	}
	if _, err := New("same", 4, 2, 2); err == nil {
		t.Error("Expected error for coinciding root arrows")
	}
	if _, err := New("narrow", 1, 0, 0); err == nil {
		t.Error("Expected error for single-lane surface")
	}
	if _, err := New("oob", 4, 0, 4); err == nil {
		t.Error("Expected error for root arrow outside surface")
	}
}

// TestDanceDouble verifies the eight-lane surface defaults
func TestDanceDouble(t *testing.T) {
	sg := DanceDouble()
	if sg.Lanes != 8 {
		t.Errorf("Expected 8 lanes, got %d", sg.Lanes)
	}
	if sg.RootArrow(Left) != 3 || sg.RootArrow(Right) != 4 {
		t.Errorf("Expected roots 3/4, got %d/%d", sg.RootArrow(Left), sg.RootArrow(Right))
	}
	if sg.RootArrow(Left) == sg.RootArrow(Right) {
		t.Error("Expected distinct root arrows")
	}
}
