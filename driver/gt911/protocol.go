package gt911

import "encoding/binary"

// DecodeStatus splits a status register value into its ready flag and
// point count. A count above MaxTouches is reported as a
// *ProtocolError, whether or not the ready flag is set.
func DecodeStatus(b byte) (ready bool, n int, err error) {
	s := Status(b)
	if s.Count() > MaxTouches {
		return s.Ready(), 0, &ProtocolError{Count: s.Count()}
	}
	return s.Ready(), s.Count(), nil
}

// DecodePoint decodes a point entry. It panics if b is shorter than
// the 7 significant bytes of an entry.
func DecodePoint(b []byte) Point {
	_ = b[pointLen-1]
	bo := binary.LittleEndian
	return Point{
		TrackID: b[0],
		X:       bo.Uint16(b[1:]),
		Y:       bo.Uint16(b[3:]),
		Area:    bo.Uint16(b[5:]),
	}
}

// DecodeTouches decodes the first n entries of a coordinate block, n
// at most MaxTouches. Bytes past the n'th entry are not accessed.
func DecodeTouches(buf []byte, n int) Touches {
	var t Touches
	for i := 0; i < n; i++ {
		off := i * EntryLen
		t.push(DecodePoint(buf[off : off+pointLen]))
	}
	return t
}

// ClearCommand returns the write that acknowledges the coordinate
// buffer. The chip reports no new data until it is sent.
func ClearCommand() [regLen + 1]byte {
	var cmd [regLen + 1]byte
	binary.BigEndian.PutUint16(cmd[:], regStatus)
	return cmd
}

// configChecksum computes the checksum register value for a config
// block, the two's complement of the byte sum.
func configChecksum(cfg []byte) byte {
	var sum byte
	for _, b := range cfg {
		sum += b
	}
	return ^sum + 1
}
