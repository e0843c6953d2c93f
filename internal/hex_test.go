package internal

import "testing"

func TestHexString(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{0x0E}, "0E"},
		{[]byte{0x0E, 0x00, 0xFF, 0xA5}, "0E 00 FF A5"},
	}

	for _, tc := range cases {
		if got := HexString(tc.in); got != tc.want {
			t.Fatalf("HexString(% X): got %q want %q", tc.in, got, tc.want)
		}
	}
}
