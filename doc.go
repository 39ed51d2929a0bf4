// Package hist implements a [Histogram] of reuse distances.
//
// A reuse distance (or stack distance) is the number of distinct
// items referenced between two references to the same item.
// Given the distances of every access in a trace, the hit rate
// of an LRU cache of any capacity can be read from the histogram:
// an access hits a cache of capacity C exactly when its distance is
// less than C.
//
// Glossary and invariants:
//
//   - Distance
//
//     Either a finite value, or infinite.
//     An access to an item with no prior reference has no
//     measurable distance and is recorded as infinite
//     (reported as a "first access").
//
//   - Count
//
//     Number of times a distance was recorded.
//     Counts only grow; a recorded distance never has a count of 0.
//
//   - Snapshot
//
//     Ordered copy of all entries.
//     Finite distances ascend, the infinite distance (if any) is last.
//
// Producing the distances (e.g. replaying a trace against an LRU stack)
// is left to the caller; the histogram only counts and reports them.
//
// Report format:
//
// [Histogram.String] and [Histogram.WriteTo] render the text
//
//	Reuse distance histogram:
//		3 distance value(s), min Some(1), max None
//		4 accesses
//		(1 first accesses)
//	value, count
//	1, 2
//	100, 1
//
// for the distances 1, 1, 100, and one infinite distance.
// Bounds use [Distance.String], which formats finite values as
// `Some(value)` and the infinite distance as `None`.
//
// Serialization:
//
// Histograms implement [encoding/json.Marshaler] and the BSON
// Marshaler/Unmarshaler interfaces of the MongoDB driver.
// Both encode a list of (distance, count) pairs
// with the infinite distance encoded as null.
// Encoding is lossless or fails: string distances which are not valid
// UTF-8 return [ErrInvalidUTF8] from either codec (JSON would replace
// them with U+FFFD), and since BSON integers are signed,
// [Histogram.MarshalBSON] returns [ErrOutOfRange] for unsigned
// distances or counts above [math.MaxInt64].
package hist
