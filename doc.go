// Package huffcodec implements a static Huffman file codec.  Compression
// counts byte frequencies, builds a prefix-code tree, embeds a preorder
// serialization of the tree in a small header, and packs the code bits of
// every input byte MSB-first.  Decompression reverses each step.
//
// Container layout (multi-byte integers are big-endian):
//
//     [4 bytes] length N of the serialized tree section
//     [N bytes] serialized tree, zero-padded to a byte boundary
//     [1 byte ] number of padding bits in the final payload byte, 0..7
//     [rest   ] packed payload
//
// The serialized tree is a preorder walk: an internal node is the bit 0
// followed by its left and right subtrees; a leaf is the bit 1 followed by
// the 8 bits of its symbol, MSB first.
//
// A zero-length input compresses to a zero-length output, and vice versa.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffcodec
