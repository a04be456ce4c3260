package rope

import "fmt"

// New creates a rope holding text in a single leaf.
// Long input is not split up front; see NewChunked. Bytes that are not
// valid UTF-8 each become U+FFFD, so callers loading files should reject
// such input first.
func New(text string) *Node {
	return newLeaf([]rune(text))
}

// NewChunked creates a balanced rope whose leaves hold at most size
// characters each. A size of zero or less uses LeafSize.
func NewChunked(text string, size int) *Node {
	if size <= 0 {
		size = LeafSize
	}

	runes := []rune(text)
	if len(runes) <= size {
		return newLeaf(runes)
	}

	var nodes []*Node
	for i := 0; i < len(runes); i += size {
		end := min(i+size, len(runes))
		chunk := make([]rune, end-i)
		copy(chunk, runes[i:end])
		nodes = append(nodes, newLeaf(chunk))
	}

	// Build tree bottom-up, pairing neighbours
	for len(nodes) > 1 {
		parents := make([]*Node, 0, (len(nodes)+1)/2)
		for i := 0; i < len(nodes); i += 2 {
			if i+1 == len(nodes) {
				parents = append(parents, nodes[i])
				break
			}
			parents = append(parents, newInternal(nodes[i], nodes[i+1]))
		}
		nodes = parents
	}
	return nodes[0]
}

// Split partitions root so that left holds [0, pos) and right holds
// [pos, Len()). root is consumed.
// Panics if pos is outside [0, root.Len()].
func Split(root *Node, pos int) (left, right *Node) {
	checkPosition(root, pos)
	return split(root, pos)
}

// Concat joins left and right. Two leaves whose combined length is at most
// LeafSize are merged into one leaf. Both inputs are consumed.
func Concat(left, right *Node) *Node {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	left.mustBeLive()
	right.mustBeLive()

	if left.leaf && right.leaf && left.weight+right.weight <= LeafSize {
		text := make([]rune, 0, left.weight+right.weight)
		text = append(text, left.text...)
		text = append(text, right.text...)
		left.release()
		right.release()
		return newLeaf(text)
	}

	return newInternal(left, right)
}

// Insert inserts text at pos and returns the new root.
// root is consumed unless text is empty, in which case it is returned as is.
func Insert(root *Node, pos int, text string) *Node {
	if text == "" {
		return root
	}

	left, right := Split(root, pos)
	return Concat(Concat(left, New(text)), right)
}

// Delete removes up to length characters starting at start and returns the
// new root. Deleting past the end stops at the end.
// root is consumed unless length is zero or less.
func Delete(root *Node, start, length int) *Node {
	if length <= 0 {
		return root
	}

	left, rest := Split(root, start)
	mid, right := split(rest, min(length, rest.Len()))
	free(mid)
	return Concat(left, right)
}

// Free releases the whole subtree rooted at n.
func Free(n *Node) {
	free(n)
}

// Rebalance rebuilds root into a balanced tree of LeafSize leaves.
// root is consumed.
func Rebalance(root *Node) *Node {
	text := root.String()
	free(root)
	return NewChunked(text, LeafSize)
}

// Depth returns the number of levels in the tree; a single leaf has depth 1.
func Depth(root *Node) int {
	root.mustBeLive()
	return depth(root)
}

// LeafCount returns the number of leaves in the tree.
func LeafCount(root *Node) int {
	root.mustBeLive()
	return leafCount(root)
}

func checkPosition(root *Node, pos int) {
	if n := root.Len(); pos < 0 || pos > n {
		panic(fmt.Sprintf("rope: position %d out of range [0, %d]", pos, n))
	}
}
