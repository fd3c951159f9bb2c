package nav

import (
	"errors"
	"testing"

	"github.com/mj1618/rotary-nav/internal/model"
)

func TestWalk_PreOrder(t *testing.T) {
	root := group("root",
		group("a", btn("a1", 0, 0), btn("a2", 0, 50)),
		btn("b", 0, 100),
	)

	ids, err := visitOrder(root, WalkOptions{Order: PreOrder})
	if err != nil {
		t.Fatal(err)
	}
	if !sameIDs(ids, "root", "a", "a1", "a2", "b") {
		t.Errorf("pre-order: got %v", ids)
	}
}

func TestWalk_PostOrder(t *testing.T) {
	root := group("root",
		group("a", btn("a1", 0, 0), btn("a2", 0, 50)),
		btn("b", 0, 100),
	)

	ids, err := visitOrder(root, WalkOptions{Order: PostOrder})
	if err != nil {
		t.Fatal(err)
	}
	if !sameIDs(ids, "a1", "a2", "a", "b", "root") {
		t.Errorf("post-order: got %v", ids)
	}
}

func TestWalk_ReverseIsReverseDocumentOrder(t *testing.T) {
	root := group("root",
		group("a", btn("a1", 0, 0), btn("a2", 0, 50)),
		btn("b", 0, 100),
	)

	ids, err := visitOrder(root, WalkOptions{Order: PreOrder, Reverse: true})
	if err != nil {
		t.Fatal(err)
	}
	if !sameIDs(ids, "root", "b", "a", "a2", "a1") {
		t.Errorf("reverse pre-order: got %v", ids)
	}
}

func TestWalk_PruneSkipsDescendantsNotNode(t *testing.T) {
	root := group("root",
		group("a", btn("a1", 0, 0)),
		btn("b", 0, 100),
	)

	ids, err := visitOrder(root, WalkOptions{
		Order: PreOrder,
		Prune: func(n *model.Node) bool { return n.ID == "a" },
	})
	if err != nil {
		t.Fatal(err)
	}
	// "a" itself is visited; "a1" is not.
	if !sameIDs(ids, "root", "a", "b") {
		t.Errorf("pruned: got %v", ids)
	}
}

func TestWalk_VisitFalseStopsEarly(t *testing.T) {
	root := group("root", btn("a", 0, 0), btn("b", 0, 50), btn("c", 0, 100))

	var ids []string
	err := Walk(root, WalkOptions{Order: PreOrder}, func(n *model.Node) bool {
		ids = append(ids, n.ID)
		return n.ID != "b"
	})
	if err != nil {
		t.Fatal(err)
	}
	if !sameIDs(ids, "root", "a", "b") {
		t.Errorf("early stop: got %v", ids)
	}
}

func TestWalk_CycleDetected(t *testing.T) {
	a := btn("a", 0, 0)
	b := btn("b", 0, 50)
	a.Children = []*model.Node{b}
	b.Children = []*model.Node{a} // back-edge

	err := Walk(a, WalkOptions{Order: PreOrder}, func(*model.Node) bool { return true })
	if !errors.Is(err, ErrMalformedTree) {
		t.Errorf("cycle: got err %v, want ErrMalformedTree", err)
	}
}

func TestWalk_NilRoot(t *testing.T) {
	if err := Walk(nil, WalkOptions{}, func(*model.Node) bool { return true }); err != nil {
		t.Errorf("nil root: got err %v", err)
	}
}

func TestWalk_EachNodeVisitedOnce(t *testing.T) {
	root := group("root",
		group("a", btn("a1", 0, 0), btn("a2", 0, 50)),
		group("b", btn("b1", 0, 100)),
	)

	counts := make(map[string]int)
	err := Walk(root, WalkOptions{Order: PreOrder}, func(n *model.Node) bool {
		counts[n.ID]++
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	for id, c := range counts {
		if c != 1 {
			t.Errorf("node %s visited %d times", id, c)
		}
	}
	if len(counts) != 6 {
		t.Errorf("visited %d nodes, want 6", len(counts))
	}
}
