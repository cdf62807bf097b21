/*
Package qdihedral implements a toy byte-stream cipher over the quasidihedral
group of order 256.

The group presentation in use is

	G = < r, s | r^128 = s^2 = 1, sr = r^63 s >

Every element of G is uniquely representable as (r^k)(s^j) for k in 0..127
and j in {0, 1}. A byte b is identified with a group element by reading its
most significant bit as j and its low seven bits as k, so all 256 byte values
map one-to-one onto G.

Encryption replaces each byte with the running left-to-right product of all
bytes seen so far. Decryption multiplies each ciphertext byte on the left by
the inverse of its predecessor, recovering the original byte. Unlike the
other transforms in this module, the pair round-trips exactly.
*/
package qdihedral
