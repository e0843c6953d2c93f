package packet

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// outEncoding is the codepage protocol strings are encoded with. The alpha-era
// client reads Shift JIS; unmappable runes are substituted rather than
// rejected, matching the client's lossy conversion.
var outEncoding encoding.Encoding = japanese.ShiftJIS

// SetTextEncoding overrides the codepage used by EncodeString and
// EncodeStringFixed, for clients localised to a different region. Must not be
// called while packets are being built.
func SetTextEncoding(enc encoding.Encoding) {
	outEncoding = enc
}

func encodeText(s string) []byte {
	src, err := encoding.ReplaceUnsupported(outEncoding.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return src
}
