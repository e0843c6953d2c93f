package packet

import "encoding/binary"

const (
	// MaxBlockLength bounds a single wire block, header included. 1460 keeps
	// every block within a typical TCP segment.
	MaxBlockLength = 0x5B4

	headerLength = 4
)

// EncodeSeqBase derives the obfuscated sequence word carried in the first two
// header bytes of every wire block. seqBase identifies the protocol version;
// seqKey is the cipher's current rolling key. The client checks this word to
// verify both that the block is well-formed and that the server's version
// matches its own, so the transform must match the client bit for bit.
func EncodeSeqBase(seqBase int, seqKey uint32) uint16 {
	var base uint16
	if seqBase != 0 {
		v := uint32(0xFFFF-seqBase) & 0xFFFF
		base = uint16((v>>8)&0xFF | (v<<8)&0xFF00)
	}
	if seqKey == 0 {
		return base
	}
	hi := uint16(seqKey >> 16)
	return (hi>>8 | hi<<8) ^ base
}

// Blocks serializes the packet into wire-ready blocks: the payload split into
// chunks of at most MaxBlockLength bytes, each encrypted in order with c and
// carrying the same 4-byte header. The header holds the obfuscated sequence
// word and the byte-swapped length of the full payload, and is stamped over
// the front of every block; the client's parser expects one on each.
//
// The first block reserves 4 bytes of its budget for the header and runs the
// zeroed header area through the cipher before the stamp. Later blocks carry
// payload across their entire length, with the header stamped over the first 4
// encrypted bytes all the same. Both behaviours are load-bearing: the client
// decrypts with the exact byte alignment produced here.
//
// An empty packet still yields one block holding only the header. A cipher
// error aborts the whole call; no partial block list is returned.
func (p *Out) Blocks(seqBase int, c Cipher) ([][]byte, error) {
	src := p.Bytes()

	// The 4-byte header is part of the first block's budget.
	remain := len(src) + headerLength

	lenBlock := min(remain, MaxBlockLength)
	block := make([]byte, lenBlock)

	var header [headerLength]byte
	rawSeq := EncodeSeqBase(seqBase, c.SequenceKey())
	binary.BigEndian.PutUint16(header[0:2], rawSeq)

	// Byte-swapped 16-bit payload length, repeated verbatim on every block.
	dataLen := uint16(len(src))<<8&0xFF00 | uint16(len(src))>>8
	binary.BigEndian.PutUint16(header[2:4], dataLen)

	copy(block[headerLength:], src[:lenBlock-headerLength])
	block, err := c.Encrypt(block)
	if err != nil {
		return nil, err
	}
	copy(block, header[:])
	src0 := lenBlock - headerLength

	blocks := [][]byte{block}
	for {
		remain -= lenBlock
		if remain == 0 {
			break
		}

		lenBlock = min(remain, MaxBlockLength)
		block = make([]byte, lenBlock)
		copy(block, src[src0:src0+lenBlock])
		block, err = c.Encrypt(block)
		if err != nil {
			return nil, err
		}
		copy(block, header[:])
		src0 += lenBlock
		blocks = append(blocks, block)
	}
	return blocks, nil
}
