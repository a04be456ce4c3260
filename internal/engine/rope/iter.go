package rope

import "iter"

// leaves yields every leaf under n from left to right. It walks with an
// explicit stack so deep ropes do not grow the goroutine stack.
func (n *Node) leaves() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := make([]*Node, 0, 16)
		stack = append(stack, n)
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.leaf {
				if !yield(top) {
					return
				}
				continue
			}
			stack = append(stack, top.right, top.left)
		}
	}
}

// Chunks returns an iterator over the text of each leaf in order. Empty
// leaves are skipped.
func (n *Node) Chunks() iter.Seq[string] {
	n.mustBeLive()
	return func(yield func(string) bool) {
		for leaf := range n.leaves() {
			if len(leaf.text) == 0 {
				continue
			}
			if !yield(string(leaf.text)) {
				return
			}
		}
	}
}

// Runes returns an iterator over (position, character) pairs in order.
func (n *Node) Runes() iter.Seq2[int, rune] {
	n.mustBeLive()
	return func(yield func(int, rune) bool) {
		pos := 0
		for leaf := range n.leaves() {
			for _, r := range leaf.text {
				if !yield(pos, r) {
					return
				}
				pos++
			}
		}
	}
}
