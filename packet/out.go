package packet

import (
	"encoding/binary"
	"math"

	"github.com/lunamaple/maplenet/internal"
)

const (
	// NoHeader skips the leading opcode byte so the packet can be built as a
	// headerless raw fragment, for embedding into another packet.
	NoHeader = math.MaxInt32

	defaultBufferAlloc = 0x100
)

// Readable is a packet-like buffer whose unread remainder can be embedded into
// an outgoing packet, such as an inbound packet being relayed onwards.
type Readable interface {
	// Remaining returns the bytes between the current read position and the end
	// of the buffer, without consuming them.
	Remaining() []byte
}

// Out is an append-only writer for a single outgoing packet. All multi-byte
// scalars are encoded little-endian. Values wider than their encoded width are
// truncated silently; the client relies on identical truncation on both ends.
//
// An Out is owned by the goroutine building the message and must not be shared.
type Out struct {
	buf []byte
}

// NewOut creates a packet with the given opcode encoded as its leading byte,
// or without one when opcode is NoHeader.
func NewOut(opcode int) *Out {
	return NewOutSized(opcode, defaultBufferAlloc)
}

// NewOutSized creates a packet with an initial buffer capacity of size bytes.
// The buffer grows past size as needed.
func NewOutSized(opcode, size int) *Out {
	p := &Out{buf: make([]byte, 0, size)}
	if opcode != NoHeader {
		p.EncodeByte(opcode)
	}
	return p
}

// Offset returns the current write cursor, which equals the number of bytes
// encoded so far.
func (p *Out) Offset() int {
	return len(p.buf)
}

// EncodeBool ...
func (p *Out) EncodeBool(b bool) {
	if b {
		p.EncodeByte(1)
	} else {
		p.EncodeByte(0)
	}
}

// EncodeByte encodes the low 8 bits of v.
func (p *Out) EncodeByte(v int) {
	p.buf = append(p.buf, byte(v&0xFF))
}

// EncodeShort encodes the low 16 bits of v, little-endian.
func (p *Out) EncodeShort(v int) {
	p.buf = binary.LittleEndian.AppendUint16(p.buf, uint16(v&0xFFFF))
}

// EncodeInt encodes the low 32 bits of v, little-endian.
func (p *Out) EncodeInt(v int) {
	p.buf = binary.LittleEndian.AppendUint32(p.buf, uint32(v))
}

// EncodeLong encodes v as 8 bytes, little-endian.
func (p *Out) EncodeLong(v int64) {
	p.buf = binary.LittleEndian.AppendUint64(p.buf, uint64(v))
}

// EncodeFloat encodes f as 4 IEEE-754 bytes, little-endian.
func (p *Out) EncodeFloat(f float32) {
	p.buf = binary.LittleEndian.AppendUint32(p.buf, math.Float32bits(f))
}

// EncodeDouble encodes d as 8 IEEE-754 bytes, little-endian.
func (p *Out) EncodeDouble(d float64) {
	p.buf = binary.LittleEndian.AppendUint64(p.buf, math.Float64bits(d))
}

// EncodeString encodes a protocol string: a 2-byte little-endian length
// followed by the string's codepage bytes. No terminator is written.
func (p *Out) EncodeString(s string) {
	src := encodeText(s)
	p.EncodeShort(len(src))
	p.EncodeBytes(src)
}

// EncodeStringFixed encodes exactly size bytes: the string's codepage bytes,
// truncated or zero-padded to size. A string that encodes longer than size
// never writes past it.
func (p *Out) EncodeStringFixed(s string, size int) {
	src := encodeText(s)
	for i := 0; i < size; i++ {
		if i >= len(src) {
			p.EncodeByte(0)
		} else {
			p.EncodeByte(int(src[i]))
		}
	}
}

// EncodeFileTime encodes ft as two 4-byte little-endian words, low word first.
func (p *Out) EncodeFileTime(ft FileTime) {
	p.EncodeInt(int(ft.LowDateTime))
	p.EncodeInt(int(ft.HighDateTime))
}

// EncodeBytes appends buf verbatim.
func (p *Out) EncodeBytes(buf []byte) {
	p.buf = append(p.buf, buf...)
}

// EncodePacket appends the unread remainder of r.
func (p *Out) EncodePacket(r Readable) {
	p.buf = append(p.buf, r.Remaining()...)
}

// EncodePadding appends count zero bytes. Useful for gap-filling fields whose
// layout is not yet known; correctness must never depend on it.
func (p *Out) EncodePadding(count int) {
	for i := 0; i < count; i++ {
		p.EncodeByte(0)
	}
}

// Bytes returns a snapshot of everything encoded so far. The snapshot is a
// copy: further encoding does not alter it, and taking it does not disturb the
// writer.
func (p *Out) Bytes() []byte {
	return append([]byte(nil), p.buf...)
}

// Dump renders the raw buffer contents as readable hex.
func (p *Out) Dump() string {
	return internal.HexString(p.buf)
}

// String ...
func (p *Out) String() string {
	return p.Dump()
}
