package bytereader

// Result is the outcome of a single-byte read: either the byte found at
// Offset, or no data because Offset is at or beyond the end of the file.
type Result struct {
	Offset int64 `json:"offset"`
	Value  byte  `json:"value"`
	Found  bool  `json:"found"`
}

// ByteAt returns a Result holding value read at offset
func ByteAt(offset int64, value byte) Result {
	return Result{Offset: offset, Value: value, Found: true}
}

// NoData returns a Result for an offset past the end of the file
func NoData(offset int64) Result {
	return Result{Offset: offset}
}

// Byte returns the byte read and whether one was available.
func (r Result) Byte() (byte, bool) {
	return r.Value, r.Found
}
