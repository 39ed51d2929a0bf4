package hist

import (
	"encoding/json"
	"math"
	"reflect"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson"
)

type (
	// wireEntry is the serialized form of an [Entry].
	// A nil Distance is the infinite distance.
	wireEntry[K Key] struct {
		Distance *K     `json:"distance" bson:"distance"`
		Count    uint64 `json:"count" bson:"count"`
	}
	// wireDocument wraps the entries, since
	// BSON requires a document at the top level.
	wireDocument[K Key] struct {
		Distances []wireEntry[K] `bson:"distances"`
	}
)

// MarshalJSON encodes the histogram as an array of
// `{"distance": value, "count": n}` objects,
// where the infinite distance is `null`.
// String distances must be valid UTF-8, otherwise
// [ErrInvalidUTF8] is returned.
func (h *Histogram[K]) MarshalJSON() ([]byte, error) {
	entries, err := h.wireEntries()
	if err != nil {
		return nil, err
	}
	return json.Marshal(entries)
}

// UnmarshalJSON replaces the contents of h with
// the entries encoded by [Histogram.MarshalJSON].
// h is left unmodified if an error is returned.
func (h *Histogram[K]) UnmarshalJSON(data []byte) error {
	var entries []wireEntry[K]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	return h.setWireEntries(entries)
}

// MarshalBSON encodes the histogram as a document
// holding a "distances" array with the same
// entries as [Histogram.MarshalJSON].
// BSON integers are signed, so distances and counts
// above [math.MaxInt64] return [ErrOutOfRange].
func (h *Histogram[K]) MarshalBSON() ([]byte, error) {
	entries, err := h.wireEntries()
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.Count > math.MaxInt64 ||
			(entry.Distance != nil && !fitsInt64(*entry.Distance)) {
			return nil, outOfRangeError(entry.distance(), entry.Count)
		}
	}
	return bson.Marshal(wireDocument[K]{Distances: entries})
}

// UnmarshalBSON replaces the contents of h with
// the entries encoded by [Histogram.MarshalBSON].
// h is left unmodified if an error is returned.
func (h *Histogram[K]) UnmarshalBSON(data []byte) error {
	var document wireDocument[K]
	if err := bson.Unmarshal(data, &document); err != nil {
		return err
	}
	return h.setWireEntries(document.Distances)
}

func (h *Histogram[K]) wireEntries() ([]wireEntry[K], error) {
	var (
		snapshot = h.Snapshot()
		entries  = make([]wireEntry[K], len(snapshot))
	)
	for i, entry := range snapshot {
		entries[i].Count = entry.Count
		if value, finite := entry.Distance.Value(); finite {
			if !validUTF8(value) {
				return nil, invalidUTF8Error(entry.Distance)
			}
			entries[i].Distance = &value
		}
	}
	return entries, nil
}

func (entry wireEntry[K]) distance() Distance[K] {
	if entry.Distance == nil {
		return Infinite[K]()
	}
	return Finite(*entry.Distance)
}

// validUTF8 reports false for string kinds
// which would be altered by text encoders.
func validUTF8[K Key](value K) bool {
	v := reflect.ValueOf(value)
	return v.Kind() != reflect.String ||
		utf8.ValidString(v.String())
}

func fitsInt64[K Key](value K) bool {
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return v.Uint() <= math.MaxInt64
	default:
		return true
	}
}

func (h *Histogram[K]) setWireEntries(entries []wireEntry[K]) error {
	counts := make(map[Distance[K]]uint64, len(entries))
	for _, entry := range entries {
		distance := entry.distance()
		if entry.Count == 0 {
			return zeroCountError(distance)
		}
		if _, exists := counts[distance]; exists {
			return duplicateDistanceError(distance)
		}
		counts[distance] = entry.Count
	}
	h.counts = counts
	return nil
}
