package rope

import (
	"errors"
	"strings"
)

// LeafSize is the largest combined length at which Concat merges two leaves
// into a single leaf.
const LeafSize = 32

// ErrReleased is the panic value raised when a consumed or freed node is used.
var ErrReleased = errors.New("rope: use of released node")

// Node is a rope node. Leaf nodes own a run of text; internal nodes own
// exactly two children.
type Node struct {
	weight int // leaf: len(text); internal: length of left subtree

	// Leaf fields
	text []rune

	// Internal fields
	left  *Node
	right *Node

	leaf     bool
	released bool
}

// newLeaf creates a leaf that takes ownership of text.
func newLeaf(text []rune) *Node {
	return &Node{
		leaf:   true,
		text:   text,
		weight: len(text),
	}
}

// newInternal joins left and right under a new internal node.
func newInternal(left, right *Node) *Node {
	return &Node{
		left:   left,
		right:  right,
		weight: left.Len(),
	}
}

// mustBeLive panics if n is nil or has been released.
func (n *Node) mustBeLive() {
	if n == nil {
		panic("rope: nil node")
	}
	if n.released {
		panic(ErrReleased)
	}
}

// release marks n as consumed and drops its references.
func (n *Node) release() {
	n.released = true
	n.text = nil
	n.left = nil
	n.right = nil
}

// IsLeaf returns true if n is a leaf node.
func (n *Node) IsLeaf() bool {
	n.mustBeLive()
	return n.leaf
}

// Weight returns the node's weight: its own length for a leaf, the length of
// its left subtree otherwise.
func (n *Node) Weight() int {
	n.mustBeLive()
	return n.weight
}

// Released reports whether n has been consumed by an operation or freed.
func (n *Node) Released() bool {
	return n.released
}

// Len returns the number of characters in the subtree rooted at n.
// Left subtrees are covered by weights, so only the right spine is walked.
func (n *Node) Len() int {
	n.mustBeLive()
	total := 0
	for !n.leaf {
		total += n.weight
		n = n.right
		n.mustBeLive()
	}
	return total + n.weight
}

// CharAt returns the character at pos.
// Returns 0 and false if pos is outside [0, Len()).
func (n *Node) CharAt(pos int) (rune, bool) {
	n.mustBeLive()
	if pos < 0 {
		return 0, false
	}
	for !n.leaf {
		if pos < n.weight {
			n = n.left
		} else {
			pos -= n.weight
			n = n.right
		}
	}
	if pos >= len(n.text) {
		return 0, false
	}
	return n.text[pos], true
}

// String returns the full text of the subtree.
func (n *Node) String() string {
	n.mustBeLive()
	var sb strings.Builder
	sb.Grow(n.Len())
	for leaf := range n.leaves() {
		for _, r := range leaf.text {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// split partitions n at pos. n is consumed.
func split(n *Node, pos int) (*Node, *Node) {
	n.mustBeLive()

	if n.leaf {
		switch {
		case pos <= 0:
			return newLeaf(nil), n
		case pos >= n.weight:
			return n, newLeaf(nil)
		}

		left := make([]rune, pos)
		copy(left, n.text[:pos])
		right := make([]rune, n.weight-pos)
		copy(right, n.text[pos:])
		n.release()
		return newLeaf(left), newLeaf(right)
	}

	left, right, weight := n.left, n.right, n.weight
	n.release()

	switch {
	case pos < weight:
		ll, lr := split(left, pos)
		return ll, newInternal(lr, right)
	case pos > weight:
		rl, rr := split(right, pos-weight)
		return newInternal(left, rl), rr
	default:
		return left, right
	}
}

// free releases every node in the subtree.
func free(n *Node) {
	if n == nil || n.released {
		return
	}
	if !n.leaf {
		free(n.left)
		free(n.right)
	}
	n.release()
}

// depth returns the number of levels in the subtree.
func depth(n *Node) int {
	if n.leaf {
		return 1
	}
	return 1 + max(depth(n.left), depth(n.right))
}

// leafCount returns the number of leaves in the subtree.
func leafCount(n *Node) int {
	count := 0
	for range n.leaves() {
		count++
	}
	return count
}
