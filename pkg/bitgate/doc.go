/*
Package bitgate implements a bit-gated XOR transform over byte buffers.

Note that this is NOT encryption; it is obfuscation, and weak obfuscation at
that, since more than half of the input bytes typically pass through
untouched. It is only useful for hiding plain text from casual observation.

# How it works:

The transform walks the key one bit at a time alongside the plaintext. For
each plaintext byte, the current key bit decides what happens: if the bit is
set, the output byte is the plaintext byte XORed with the whole current key
byte; if it is clear, the plaintext byte is copied through unchanged.

Only the low seven bits of each key byte are consulted as gates. After bit 6
the cursor moves to bit 0 of the next key byte, wrapping to the start of the
key when it runs out. The key is assumed to be 7-bit ASCII text, where bit 7
never carries information.
*/
package bitgate
