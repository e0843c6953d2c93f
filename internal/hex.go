package internal

import "strings"

const hextable = "0123456789ABCDEF"

// HexString renders buf as space-separated uppercase hex pairs, e.g. "0A FF 00".
func HexString(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(buf)*3 - 1)
	for i, b := range buf {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(hextable[b>>4])
		sb.WriteByte(hextable[b&0xF])
	}
	return sb.String()
}
