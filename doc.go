// Package huffpack builds Huffman codes for the 256-symbol byte alphabet and
// uses them to bit-pack a buffer.
//
// The pipeline is: count symbol frequencies, build a Huffman tree over all
// 256 leaves, extract one Encoding per symbol, then pack the input into a
// single Bits value whose length is known before packing begins.  Counting and
// packing are split across goroutines; tree construction is sequential.
//
// In every internal node of the tree, the heavier child contributes a 1 bit
// and the lighter child a 0 bit, so the code table is a pure function of the
// symbol counts.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
