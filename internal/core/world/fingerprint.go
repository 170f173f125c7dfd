package world

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes every body pose bit for bit. Two runs with the same
// configuration and seed end with the same fingerprint.
func Fingerprint(s *State) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 32)
	for _, b := range s.bodies {
		buf = buf[:0]
		buf = binary.LittleEndian.AppendUint64(buf, uint64(b.ID))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(b.Circle.Center.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(b.Circle.Center.Y))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(b.Heading))
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
