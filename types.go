package coerce

import "time"

// OffsetDateTime is a point in time paired with an explicit UTC offset. It is
// the offset-carrying counterpart of a plain time.Time within the category
// set: converting a time.Time into it fixes the offset according to the
// context time styles, converting back retains the instant and drops the
// offset distinction.
type OffsetDateTime struct {
	time.Time
}

// NewOffsetDateTime wraps t keeping its current zone offset.
func NewOffsetDateTime(t time.Time) OffsetDateTime {
	return OffsetDateTime{Time: t}
}
