package bloom

// Option configures filter construction.
type Option struct {
	// Pair derives the two base hash values. nil means MD5Pair.
	Pair PairHash
}

var DefaultOption = Option{
	Pair: MD5Pair,
}
