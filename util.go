package huffpack

// wordsFor returns the number of 64-bit words needed to hold n bits.
func wordsFor(n uint64) int {
	return int((n + 63) / 64)
}

// highBits returns the top n bits of word, with everything below them cleared.
func highBits(word uint64, n uint) uint64 {
	if n >= 64 {
		return word
	}
	if n == 0 {
		return 0
	}
	return word &^ (^uint64(0) >> n)
}
