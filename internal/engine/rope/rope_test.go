package rope

import (
	"errors"
	"strings"
	"testing"
	"testing/quick"
)

func TestNewEmpty(t *testing.T) {
	r := New("")
	if r.Len() != 0 {
		t.Errorf("New rope should have length 0, got %d", r.Len())
	}
	if !r.IsLeaf() {
		t.Error("New rope should be a single leaf")
	}
	if r.String() != "" {
		t.Errorf("New rope String() should be empty, got %q", r.String())
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single char", "a"},
		{"short string", "hello"},
		{"with newline", "hello\nworld"},
		{"multiple newlines", "a\nb\nc\nd"},
		{"unicode", "hello 世界 🌍"},
		{"long string", strings.Repeat("abcdefghij", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.input)
			if r.String() != tt.input {
				t.Errorf("String() = %q, want %q", r.String(), tt.input)
			}
			if r.Len() != len([]rune(tt.input)) {
				t.Errorf("Len() = %d, want %d", r.Len(), len([]rune(tt.input)))
			}
			if !r.IsLeaf() {
				t.Error("New should always build a single leaf")
			}
		})
	}
}

func TestCharAt(t *testing.T) {
	r := Insert(New("hello"), 5, " 世界")

	tests := []struct {
		pos  int
		want rune
		ok   bool
	}{
		{0, 'h', true},
		{4, 'o', true},
		{5, ' ', true},
		{6, '世', true},
		{7, '界', true},
		{8, 0, false},
		{-1, 0, false},
		{100, 0, false},
	}

	for _, tt := range tests {
		got, ok := r.CharAt(tt.pos)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CharAt(%d) = (%q, %v), want (%q, %v)", tt.pos, got, ok, tt.want, tt.ok)
		}
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		pos      int
		text     string
		expected string
	}{
		{"insert at start", "world", 0, "hello ", "hello world"},
		{"insert at end", "hello", 5, " world", "hello world"},
		{"insert in middle", "helloworld", 5, " ", "hello world"},
		{"insert into empty", "", 0, "abc", "abc"},
		{"insert empty string", "hello", 3, "", "hello"},
		{"insert unicode", "hello", 5, " 世界", "hello 世界"},
		{"insert between wide runes", "世界", 1, "!", "世!界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Insert(New(tt.initial), tt.pos, tt.text)
			if got := r.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInsertEmptyReturnsSameRoot(t *testing.T) {
	r := New("hello")
	if got := Insert(r, 2, ""); got != r {
		t.Error("inserting empty text should return the same root")
	}
	if r.Released() {
		t.Error("root should not be consumed by an empty insert")
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		start    int
		length   int
		expected string
	}{
		{"delete from start", "hello world", 0, 6, "world"},
		{"delete from end", "hello world", 5, 6, "hello"},
		{"delete from middle", "hello world", 5, 1, "helloworld"},
		{"delete all", "hello", 0, 5, ""},
		{"delete nothing", "hello", 3, 0, "hello"},
		{"delete negative", "hello", 3, -2, "hello"},
		{"delete beyond end", "hello", 2, 100, "he"},
		{"delete at end", "hello", 5, 1, "hello"},
		{"delete unicode", "a世界b", 1, 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Delete(New(tt.initial), tt.start, tt.length)
			if got := r.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		pos           int
		expectedLeft  string
		expectedRight string
	}{
		{"split at start", "hello", 0, "", "hello"},
		{"split at end", "hello", 5, "hello", ""},
		{"split in middle", "hello", 3, "hel", "lo"},
		{"split empty", "", 0, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := Split(New(tt.input), tt.pos)
			if left.String() != tt.expectedLeft {
				t.Errorf("left = %q, want %q", left.String(), tt.expectedLeft)
			}
			if right.String() != tt.expectedRight {
				t.Errorf("right = %q, want %q", right.String(), tt.expectedRight)
			}
			if left.Len() != tt.pos {
				t.Errorf("left.Len() = %d, want %d", left.Len(), tt.pos)
			}
		})
	}
}

func TestSplitInternalAtWeight(t *testing.T) {
	l := New(strings.Repeat("a", 20))
	r := New(strings.Repeat("b", 20))
	root := Concat(l, r)
	if root.IsLeaf() {
		t.Fatal("40 characters should not merge into one leaf")
	}

	left, right := Split(root, 20)
	if left != l || right != r {
		t.Error("splitting at the weight should return the existing children")
	}
	if !root.Released() {
		t.Error("split should consume the internal node")
	}
}

func TestSplitEveryPosition(t *testing.T) {
	text := "the quick brown fox\njumps over the lazy dog\n" + strings.Repeat("x", 40)
	for pos := 0; pos <= len(text); pos++ {
		root := NewChunked(text, 7)
		left, right := Split(root, pos)
		if left.Len() != pos {
			t.Fatalf("pos %d: left.Len() = %d", pos, left.Len())
		}
		if got := left.String() + right.String(); got != text {
			t.Fatalf("pos %d: split lost text: %q", pos, got)
		}
	}
}

func TestSplitOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range split")
		}
	}()
	Split(New("abc"), 4)
}

func TestConcatMergesSmallLeaves(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		leaf  bool
	}{
		{"tiny", "abc", "def", true},
		{"exactly threshold", strings.Repeat("a", 16), strings.Repeat("b", 16), true},
		{"one over threshold", strings.Repeat("a", 16), strings.Repeat("b", 17), false},
		{"empty left", "", "abc", true},
		{"large", strings.Repeat("a", 100), "b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r := New(tt.left), New(tt.right)
			node := Concat(l, r)
			if node.IsLeaf() != tt.leaf {
				t.Errorf("IsLeaf() = %v, want %v", node.IsLeaf(), tt.leaf)
			}
			if node.String() != tt.left+tt.right {
				t.Errorf("got %q, want %q", node.String(), tt.left+tt.right)
			}
			if tt.leaf && (!l.Released() || !r.Released()) {
				t.Error("merged inputs should be released")
			}
		})
	}
}

func TestConcatInternalWeight(t *testing.T) {
	left := NewChunked(strings.Repeat("a", 50), 10)
	node := Concat(left, New("tail"))
	if node.IsLeaf() {
		t.Fatal("expected internal node")
	}
	if node.Weight() != 50 {
		t.Errorf("Weight() = %d, want 50", node.Weight())
	}
	if node.Len() != 54 {
		t.Errorf("Len() = %d, want 54", node.Len())
	}
}

func TestConcatNil(t *testing.T) {
	r := New("abc")
	if Concat(nil, r) != r || Concat(r, nil) != r {
		t.Error("concat with nil should return the other side")
	}
}

func TestReleasedNodePanics(t *testing.T) {
	root := New("hello")
	_ = Insert(root, 2, "xx")

	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, ErrReleased) {
			t.Errorf("recover() = %v, want ErrReleased", rec)
		}
	}()
	_ = root.String()
}

func TestFree(t *testing.T) {
	root := NewChunked(strings.Repeat("abc", 40), 8)
	Free(root)
	if !root.Released() {
		t.Error("root should be released after Free")
	}
	Free(root) // freeing twice is harmless
}

func TestNewChunked(t *testing.T) {
	text := strings.Repeat("0123456789", 13)
	r := NewChunked(text, LeafSize)
	if r.String() != text {
		t.Fatal("chunked rope lost text")
	}
	if got, want := LeafCount(r), 5; got != want {
		t.Errorf("LeafCount() = %d, want %d", got, want)
	}
	if got := Depth(r); got > 4 {
		t.Errorf("Depth() = %d, want a balanced tree", got)
	}
	if !NewChunked("short", 0).IsLeaf() {
		t.Error("short text should stay a single leaf")
	}
}

func TestRebalance(t *testing.T) {
	root := New("")
	for i := 0; i < 200; i++ {
		root = Insert(root, root.Len(), strings.Repeat("z", LeafSize))
	}
	before := Depth(root)
	text := root.String()

	root = Rebalance(root)
	if root.String() != text {
		t.Fatal("rebalance changed content")
	}
	if after := Depth(root); after >= before {
		t.Errorf("depth %d -> %d, want shallower tree", before, after)
	}
}

func TestSingleCharEditsCoalesce(t *testing.T) {
	root := New("")
	for i, r := range "typing one character at a time" {
		root = Insert(root, i, string(r))
	}
	if !root.IsLeaf() {
		t.Errorf("short typed text should coalesce into one leaf, got %d leaves", LeafCount(root))
	}
}

func TestInsertIntoEmpty(t *testing.T) {
	root := Insert(New(""), 0, "abc")
	if root.String() != "abc" || root.Len() != 3 {
		t.Errorf("got %q (len %d), want \"abc\" (len 3)", root.String(), root.Len())
	}
}

// buildRope creates a multi-leaf rope so properties exercise internal nodes.
func buildRope(s string) *Node {
	return NewChunked(s, 5)
}

func TestRoundTripProperty(t *testing.T) {
	f := func(s string) bool {
		return New(s).String() == s && buildRope(s).String() == s
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestInsertDeleteInverseProperty(t *testing.T) {
	f := func(base, ins string, p uint16) bool {
		root := buildRope(base)
		want := root.String()
		pos := int(p) % (root.Len() + 1)
		n := len([]rune(ins))

		root = Insert(root, pos, ins)
		root = Delete(root, pos, n)
		return root.String() == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestLengthAdditivityProperty(t *testing.T) {
	f := func(base, ins string, p, n uint16) bool {
		root := buildRope(base)
		total := root.Len()
		pos := int(p) % (total + 1)

		root = Insert(root, pos, ins)
		if root.Len() != total+len([]rune(ins)) {
			return false
		}

		total = root.Len()
		count := int(n % 64)
		root = Delete(root, pos, count)
		return root.Len() == total-min(count, total-pos)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestWeightInvariant(t *testing.T) {
	root := New("")
	for i := 0; i < 300; i++ {
		pos := (i * 7) % (root.Len() + 1)
		root = Insert(root, pos, "ab\n")
		if i%5 == 0 {
			root = Delete(root, pos/2, 2)
		}
	}
	checkWeights(t, root)
}

func checkWeights(t *testing.T, n *Node) int {
	t.Helper()
	if n.leaf {
		if n.weight != len(n.text) {
			t.Fatalf("leaf weight %d != text length %d", n.weight, len(n.text))
		}
		return n.weight
	}
	if n.left == nil || n.right == nil {
		t.Fatal("internal node with missing child")
	}
	l := checkWeights(t, n.left)
	if n.weight != l {
		t.Fatalf("internal weight %d != left length %d", n.weight, l)
	}
	return l + checkWeights(t, n.right)
}

// Iterator Tests

func TestChunks(t *testing.T) {
	root := NewChunked(strings.Repeat("abcd", 20), 32)

	var got []string
	for chunk := range root.Chunks() {
		got = append(got, chunk)
	}

	want := []string{strings.Repeat("abcd", 8), strings.Repeat("abcd", 8), strings.Repeat("abcd", 4)}
	if len(got) != len(want) {
		t.Fatalf("Chunks() yielded %d chunks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestChunksSkipsEmptyLeaves(t *testing.T) {
	root := newInternal(newLeaf(nil), New("abc"))

	n := 0
	for range root.Chunks() {
		n++
	}
	if n != 1 {
		t.Errorf("Chunks() yielded %d chunks, want 1", n)
	}
}

func TestRunes(t *testing.T) {
	root := Insert(New("héllo"), 2, "世界")

	var text []rune
	for pos, r := range root.Runes() {
		if pos != len(text) {
			t.Fatalf("position %d, want %d", pos, len(text))
		}
		text = append(text, r)
	}
	if string(text) != "hé世界llo" {
		t.Errorf("Runes() = %q", string(text))
	}
}

func TestRunesEarlyStop(t *testing.T) {
	root := NewChunked(strings.Repeat("x", 100), 8)

	n := 0
	for pos := range root.Runes() {
		if pos == 9 {
			break
		}
		n++
	}
	if n != 9 {
		t.Errorf("visited %d runes before stop, want 9", n)
	}
}
