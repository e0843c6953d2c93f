package packet

import "time"

// filetimeEpochDelta is the offset between the FILETIME epoch (1601-01-01) and
// the Unix epoch, in 100ns ticks.
const filetimeEpochDelta = 116444736000000000

// FileTime is a Windows FILETIME split into its low and high 32-bit words, the
// form the client reads timestamps in.
type FileTime struct {
	LowDateTime  uint32
	HighDateTime uint32
}

// FileTimeFrom converts t to a FileTime.
func FileTimeFrom(t time.Time) FileTime {
	ticks := uint64(t.UnixNano()/100 + filetimeEpochDelta)
	return FileTime{
		LowDateTime:  uint32(ticks),
		HighDateTime: uint32(ticks >> 32),
	}
}

// Time converts ft back to a time.Time in UTC.
func (ft FileTime) Time() time.Time {
	ticks := int64(ft.HighDateTime)<<32 | int64(ft.LowDateTime)
	return time.Unix(0, (ticks-filetimeEpochDelta)*100).UTC()
}
