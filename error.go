package hist

import "fmt"

type constError string

const (
	// ErrDuplicateDistance may be returned when decoding
	// a payload which lists the same distance more than once.
	ErrDuplicateDistance = constError("duplicate distance")
	// ErrInvalidCount may be returned when decoding
	// a payload which contains a zero count.
	ErrInvalidCount = constError("invalid count")
	// ErrInvalidUTF8 may be returned when encoding
	// a string distance which is not valid UTF-8.
	ErrInvalidUTF8 = constError("invalid UTF-8")
	// ErrOutOfRange may be returned from [Histogram.MarshalBSON]
	// when a distance or count exceeds the int64 range of BSON.
	ErrOutOfRange = constError("value out of range")
)

func (errStr constError) Error() string { return string(errStr) }

func duplicateDistanceError[K Key](distance Distance[K]) error {
	return fmt.Errorf(
		"%w: %s appears more than once",
		ErrDuplicateDistance, distance)
}

func zeroCountError[K Key](distance Distance[K]) error {
	return fmt.Errorf(
		"%w: %s must have a count >=1",
		ErrInvalidCount, distance)
}

func invalidUTF8Error[K Key](distance Distance[K]) error {
	return fmt.Errorf(
		"%w: %q cannot be encoded losslessly",
		ErrInvalidUTF8, fmt.Sprint(distance))
}

func outOfRangeError[K Key](distance Distance[K], count uint64) error {
	return fmt.Errorf(
		"%w: %s (count %d) does not fit in a BSON int64",
		ErrOutOfRange, distance, count)
}
