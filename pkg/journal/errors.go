package journal

import (
	"errors"
	"fmt"
)

// ErrStorage matches any *StorageError via errors.Is.
var ErrStorage = errors.New("journal: storage failure")

// StorageError reports that a mutation could not be persisted. The
// in-memory collection is left as it was before the call.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("journal: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// WholePayload is the Index of a warning about the payload as a whole
// rather than a single record.
const WholePayload = -1

// CorruptDataWarning describes persisted data that Load discarded.
type CorruptDataWarning struct {
	Index  int
	ID     string
	Reason string
}

func (w CorruptDataWarning) String() string {
	switch {
	case w.Index == WholePayload:
		return "payload: " + w.Reason
	case w.ID != "":
		return fmt.Sprintf("record %d (%s): %s", w.Index, w.ID, w.Reason)
	default:
		return fmt.Sprintf("record %d: %s", w.Index, w.Reason)
	}
}
