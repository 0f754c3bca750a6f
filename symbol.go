package huffpack

// NumSymbols is the size of the alphabet: one symbol per byte value.
const NumSymbols = 256

// MaxSymbol is the last symbol in the alphabet.
const MaxSymbol = NumSymbols - 1

// maxNodes is the node count of a tree with NumSymbols leaves.
const maxNodes = 2*NumSymbols - 1

// nodeIndex addresses a node in a Tree.  Leaves occupy [0, NumSymbols) in
// symbol order; internal nodes follow in creation order.
type nodeIndex int16

// noNode marks an absent parent or child.  It is never a valid index.
const noNode = nodeIndex(-1)
