package packet

// Cipher is the rolling per-connection stream cipher wire blocks are encrypted
// with. Encrypt advances the cipher's internal sequence, so the blocks of one
// connection must be encrypted strictly in order by one goroutine at a time.
// Independent connections carry independent Ciphers and may encode in parallel.
type Cipher interface {
	// SequenceKey returns the cipher's current rolling sequence key.
	SequenceKey() uint32
	// Encrypt transforms one block and returns the result. The returned slice
	// has the same length as the input.
	Encrypt(block []byte) ([]byte, error)
}
