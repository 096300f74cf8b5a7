package snapshot

import "errors"

// ErrLocked indicates another export holds the snapshot lock.
var ErrLocked = errors.New("snapshot is locked by another export")
