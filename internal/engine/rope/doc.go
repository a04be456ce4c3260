// Package rope provides a mutable binary rope for editor text storage.
//
// A rope is a binary tree where leaf nodes hold short runs of text and
// internal nodes join exactly two children. Every internal node stores a
// weight equal to the character count of its left subtree, so offsets can be
// resolved by a single descent from the root.
//
// All mutation is expressed with two primitives:
//
//   - Split partitions a tree at a character offset.
//   - Concat joins two trees, merging adjacent leaves whose combined length
//     fits within LeafSize.
//
// Insert and Delete are built from them:
//
//	root := rope.New("hello world")
//	root = rope.Insert(root, 5, ",")   // "hello, world"
//	root = rope.Delete(root, 0, 7)     // "world"
//	text := root.String()              // "world"
//
// # Ownership
//
// Split, Concat, Insert and Delete consume the nodes passed to them. The
// caller must only use the returned nodes afterward. Nodes that were consumed
// or freed are marked released, and any later use of them panics with
// ErrReleased.
//
// Characters are Unicode code points; all offsets and lengths count runes.
//
// The tree is not safe for concurrent use.
package rope
