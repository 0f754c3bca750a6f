package huffpack

import (
	"math/rand"
	"sort"
	"strings"
	"testing"
)

func countBytes(data []byte) Frequencies {
	var freqs Frequencies
	for _, b := range data {
		freqs[b]++
	}
	return freqs
}

// optimalCost computes the weighted path length of a Huffman tree over the
// same leaves with the classic two-queue method.
func optimalCost(freqs *Frequencies, skipUnused bool) uint64 {
	var leaves []uint64
	for _, count := range freqs {
		if count != 0 || !skipUnused {
			leaves = append(leaves, count)
		}
	}
	for len(leaves) < 2 {
		leaves = append(leaves, 0)
	}
	sort.Slice(leaves, func(i, j int) bool { return leaves[i] < leaves[j] })

	var merged []uint64
	pop := func() uint64 {
		if len(merged) == 0 || (len(leaves) != 0 && leaves[0] <= merged[0]) {
			x := leaves[0]
			leaves = leaves[1:]
			return x
		}
		x := merged[0]
		merged = merged[1:]
		return x
	}

	var cost uint64
	for len(leaves)+len(merged) > 1 {
		sum := pop() + pop()
		cost += sum
		merged = append(merged, sum)
	}
	return cost
}

func checkPrefixFree(t *testing.T, table *Table) {
	t.Helper()
	for a := 0; a < NumSymbols; a++ {
		if table[a].IsEmpty() {
			continue
		}
		for b := 0; b < NumSymbols; b++ {
			if a == b || table[b].IsEmpty() {
				continue
			}
			if table[b].HasPrefix(table[a]) {
				t.Fatalf("code of %d (%s) is a prefix of code of %d (%s)", a, table[a], b, table[b])
			}
		}
	}
}

func testInputs() map[string][]byte {
	r := rand.New(rand.NewSource(1))
	skewed := make([]byte, 5000)
	for i := range skewed {
		skewed[i] = byte(int(r.ExpFloat64()*12) % NumSymbols)
	}
	uniform := make([]byte, 4096)
	for i := range uniform {
		uniform[i] = byte(i)
	}
	noise := make([]byte, 3000)
	r.Read(noise)
	return map[string][]byte{
		"aaaabbbcc": []byte("aaaabbbcc"),
		"single":    []byte("x"),
		"repeated":  []byte(strings.Repeat("z", 100)),
		"text":      []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 20)),
		"skewed":    skewed,
		"uniform":   uniform,
		"noise":     noise,
	}
}

func TestTree_Scenario(t *testing.T) {
	freqs := countBytes([]byte("aaaabbbcc"))

	type testRow struct {
		name         string
		opts         TreeOptions
		a, b, c      string
		bitsRequired uint64
		nodes        int
	}

	testData := [...]testRow{
		{name: "all", opts: TreeOptions{}, a: "\"0\"", b: "\"11\"", c: "\"101\"", bitsRequired: 16, nodes: maxNodes},
		{name: "present", opts: TreeOptions{SkipUnused: true}, a: "\"0\"", b: "\"11\"", c: "\"10\"", bitsRequired: 14, nodes: NumSymbols + 2},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree := NewTree(&freqs, row.opts)
			table := tree.Encodings()

			if tree.Len() != row.nodes {
				t.Errorf("wrong node count: expect %d, actual %d", row.nodes, tree.Len())
			}
			if tree.Weight() != 9 {
				t.Errorf("wrong root weight: expect 9, actual %d", tree.Weight())
			}
			for _, item := range []struct {
				symbol byte
				expect string
			}{{'a', row.a}, {'b', row.b}, {'c', row.c}} {
				if actual := table.Encode(item.symbol).String(); actual != item.expect {
					t.Errorf("wrong code for %q:\n\texpect: %s\n\tactual: %s", item.symbol, item.expect, actual)
				}
			}

			a, b, c := table['a'].Len(), table['b'].Len(), table['c'].Len()
			if a != 1 || a > b || b > c {
				t.Errorf("wrong code lengths: a=%d b=%d c=%d", a, b, c)
			}
			if actual := table.BitsRequired(&freqs); actual != row.bitsRequired {
				t.Errorf("wrong bits required: expect %d, actual %d", row.bitsRequired, actual)
			}
			if actual := tree.Cost(); actual != row.bitsRequired {
				t.Errorf("wrong tree cost: expect %d, actual %d", row.bitsRequired, actual)
			}
		})
	}
}

func TestTree_Dump(t *testing.T) {
	freqs := countBytes([]byte("aaaabbbcc"))
	tree := NewTree(&freqs, TreeOptions{SkipUnused: true})

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tLen() = 258\n",
		"\tWeight() = 9\n",
		"\tNode(256) = {count: 5, heavier: 98}\n",
		"\tNode(257) = {count: 9, heavier: 256}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestTree_Structure(t *testing.T) {
	for name, data := range testInputs() {
		freqs := countBytes(data)
		t.Run(name, func(t *testing.T) {
			tree := NewTree(&freqs, TreeOptions{})
			if tree.Len() != maxNodes {
				t.Fatalf("wrong node count: expect %d, actual %d", maxNodes, tree.Len())
			}
			if int(tree.root) != maxNodes-1 {
				t.Errorf("root is node %d, expected %d", tree.root, maxNodes-1)
			}

			children := make(map[nodeIndex][]nodeIndex)
			for index, n := range tree.nodes {
				if nodeIndex(index) == tree.root {
					if n.parent != noNode || n.bit {
						t.Errorf("root has parent %d, bit %v", n.parent, n.bit)
					}
					continue
				}
				if n.parent == noNode {
					t.Errorf("node %d has no parent", index)
					continue
				}
				if int(n.parent) <= index {
					t.Errorf("node %d has parent %d created before it", index, n.parent)
				}
				children[n.parent] = append(children[n.parent], nodeIndex(index))
			}

			for index := NumSymbols; index < maxNodes; index++ {
				kids := children[nodeIndex(index)]
				if len(kids) != 2 {
					t.Errorf("node %d has %d children", index, len(kids))
					continue
				}
				x, y := tree.nodes[kids[0]], tree.nodes[kids[1]]
				if x.bit == y.bit {
					t.Errorf("children of node %d both have bit %v", index, x.bit)
				}
				if x.count+y.count != tree.nodes[index].count {
					t.Errorf("node %d has count %d, children sum to %d", index, tree.nodes[index].count, x.count+y.count)
				}
				heavy, light := x, y
				if y.bit {
					heavy, light = y, x
				}
				if heavy.count < light.count {
					t.Errorf("node %d gives bit 1 to the lighter child", index)
				}
			}
		})
	}
}

func TestTree_Codes(t *testing.T) {
	for name, data := range testInputs() {
		freqs := countBytes(data)
		for _, skipUnused := range []bool{false, true} {
			opts := TreeOptions{SkipUnused: skipUnused}
			label := name + "/all"
			if skipUnused {
				label = name + "/present"
			}
			t.Run(label, func(t *testing.T) {
				tree := NewTree(&freqs, opts)
				table := tree.Encodings()
				checkPrefixFree(t, table)

				for symbol, count := range freqs {
					e := table[symbol]
					if e.Len() > MaxEncodingSize {
						t.Errorf("code of %d has %d bits", symbol, e.Len())
					}
					if e.IsEmpty() && (count != 0 || !skipUnused) {
						t.Errorf("symbol %d (count %d) has no code", symbol, count)
					}
				}

				expect := optimalCost(&freqs, skipUnused)
				if actual := table.BitsRequired(&freqs); actual != expect {
					t.Errorf("not optimal: expect %d bits, actual %d", expect, actual)
				}
				if actual := tree.Cost(); actual != expect {
					t.Errorf("wrong tree cost: expect %d, actual %d", expect, actual)
				}

				again := NewTree(&freqs, opts).Encodings()
				if *again != *table {
					t.Errorf("second build produced a different table")
				}
			})
		}
	}
}

func TestTree_Degenerate(t *testing.T) {
	const n = 1000
	data := []byte(strings.Repeat("q", n-1) + "!")
	freqs := countBytes(data)

	table := NewTree(&freqs, TreeOptions{}).Encodings()
	for symbol, e := range table {
		if e.IsEmpty() || e.Len() > MaxEncodingSize {
			t.Errorf("symbol %d has code of %d bits", symbol, e.Len())
		}
	}
	if table['q'].Len() != 1 {
		t.Errorf("dominant symbol has %d bits, expected 1", table['q'].Len())
	}
	checkPrefixFree(t, table)

	single := countBytes([]byte("xxxx"))
	table = NewTree(&single, TreeOptions{SkipUnused: true}).Encodings()
	if table['x'].Len() != 1 || table[0].Len() != 1 {
		t.Errorf("wrong padded codes: x=%s 0=%s", table['x'], table[0])
	}
	if table[1].Len() != 0 {
		t.Errorf("absent symbol 1 has code %s", table[1])
	}
	if actual := table.BitsRequired(&single); actual != 4 {
		t.Errorf("wrong bits required: expect 4, actual %d", actual)
	}

	var empty Frequencies
	table = NewTree(&empty, TreeOptions{}).Encodings()
	checkPrefixFree(t, table)
	if table.MinSize() == 0 {
		t.Errorf("all-zero table has a symbol without a code")
	}
}

func TestTree_Uniform(t *testing.T) {
	var freqs Frequencies
	for symbol := range freqs {
		freqs[symbol] = 7
	}
	table := NewTree(&freqs, TreeOptions{}).Encodings()
	if table.MinSize() != 8 || table.MaxSize() != 8 {
		t.Errorf("wrong sizes: min %d, max %d, expected 8", table.MinSize(), table.MaxSize())
	}
}

func TestTree_Deep(t *testing.T) {
	const n = 60
	var freqs Frequencies
	a, b := uint64(1), uint64(1)
	for symbol := 0; symbol < n; symbol++ {
		freqs[symbol] = a
		a, b = b, a+b
	}
	table := NewTree(&freqs, TreeOptions{SkipUnused: true}).Encodings()
	if table.MaxSize() != n-1 {
		t.Errorf("wrong max size: expect %d, actual %d", n-1, table.MaxSize())
	}
	checkPrefixFree(t, table)
}

func TestTree_BitMarkedTwice(t *testing.T) {
	freqs := countBytes([]byte("aaaabbbcc"))
	tree := NewTree(&freqs, TreeOptions{})
	expectPanic(t, "assignBits", tree.assignBits)
}

func TestFrequenciesFromSlice(t *testing.T) {
	counts := make([]uint64, NumSymbols)
	counts[MaxSymbol] = 3
	freqs := FrequenciesFromSlice(counts)
	if freqs[MaxSymbol] != 3 || freqs.Total() != 3 {
		t.Errorf("wrong table: last %d, total %d", freqs[MaxSymbol], freqs.Total())
	}

	expectPanic(t, "short", func() { FrequenciesFromSlice(make([]uint64, NumSymbols-1)) })
	expectPanic(t, "long", func() { FrequenciesFromSlice(make([]uint64, NumSymbols+1)) })
}
