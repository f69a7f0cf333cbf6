package huffcodec

// bytesForBits returns the number of whole bytes needed to hold n bits.
func bytesForBits(n uint64) uint64 {
	return (n + 7) / 8
}

// paddingForBits returns the number of zero bits needed to bring n bits up
// to a byte boundary.
func paddingForBits(n uint64) byte {
	return byte((8 - n%8) % 8)
}
