package timeval

import (
	"fmt"

	"github.com/blockberries/cramberry/pkg/cramberry"
)

// wireTime mirrors Time with cramberry struct tags for
// deterministic binary serialization across languages.
type wireTime struct {
	Seconds int64 `cramberry:"1"`
	Micros  int64 `cramberry:"2"`
}

// MarshalBinary implements encoding.BinaryMarshaler using the
// cramberry wire format. The encoding is deterministic: equal
// values always produce equal bytes.
func (t Time) MarshalBinary() ([]byte, error) {
	return cramberry.Marshal(wireTime{Seconds: t.sec, Micros: t.usec})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The decoded
// fields are taken as-is, like New: an out-of-range microsecond
// field round-trips unchanged.
func (t *Time) UnmarshalBinary(data []byte) error {
	var w wireTime
	if err := cramberry.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("timeval: unmarshal time: %w", err)
	}
	t.sec, t.usec = w.Seconds, w.Micros
	return nil
}
