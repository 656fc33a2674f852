package item

import "fmt"

// Bucket is the GTD classification of an item.
//
// A bucket is always derived from the item's other attributes; it is
// never stored on the item itself. See the classify package for the
// precedence rules.
type Bucket int

const (
	// BucketCompleted holds finished items.
	BucketCompleted Bucket = iota

	// BucketTickler holds items hidden until a future date arrives.
	BucketTickler

	// BucketSomeday holds incubating someday/maybe items.
	BucketSomeday

	// BucketWaiting holds items blocked on someone else.
	BucketWaiting

	// BucketNextAction holds items actionable now. This is the fallback
	// bucket: an item with no deferral markers is actionable.
	BucketNextAction
)

// bucketNames maps buckets to their canonical names.
var bucketNames = map[Bucket]string{
	BucketCompleted:  "completed",
	BucketTickler:    "tickler",
	BucketSomeday:    "someday",
	BucketWaiting:    "waiting",
	BucketNextAction: "next",
}

// String returns the canonical lowercase bucket name.
func (b Bucket) String() string {
	if name, ok := bucketNames[b]; ok {
		return name
	}
	return fmt.Sprintf("bucket(%d)", int(b))
}

// MarshalJSON encodes the bucket by its canonical name.
func (b Bucket) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

// ParseBucket resolves a canonical bucket name.
func ParseBucket(name string) (Bucket, bool) {
	for b, n := range bucketNames {
		if n == name {
			return b, true
		}
	}
	return 0, false
}
