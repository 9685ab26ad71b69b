package internal

import (
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	msgpack.RegisterExt(1, (*LocalizedTime)(nil))
}

// LocalizedTime keeps the location of a time.Time across an encoding round trip.
type LocalizedTime struct {
	time.Time
}

var _ msgpack.Marshaler = (*LocalizedTime)(nil)
var _ msgpack.Unmarshaler = (*LocalizedTime)(nil)

func (tm *LocalizedTime) MarshalMsgpack() ([]byte, error) {
	return tm.GobEncode()
}

func (tm *LocalizedTime) UnmarshalMsgpack(b []byte) error {
	return tm.GobDecode(b)
}
