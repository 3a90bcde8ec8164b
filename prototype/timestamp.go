package prototype

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Timestamp is a point in time in nanoseconds since the unix epoch, encoded in JSON as a string.
type Timestamp uint64

func TimestampFromSeconds(seconds uint64) Timestamp {
	return Timestamp(seconds * uint64(time.Second))
}

func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp(t.UnixNano())
}

func (t Timestamp) Nanos() uint64 {
	return uint64(t)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(t), 10))
}

func (t *Timestamp) UnmarshalJSON(input []byte) error {
	var s string
	if err := json.Unmarshal(input, &s); err != nil {
		return errors.Wrap(ErrJSONFormatErr, "Timestamp must be a string")
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return errors.Wrapf(ErrJSONFormatErr, "invalid Timestamp %q", s)
	}
	*t = Timestamp(v)
	return nil
}
