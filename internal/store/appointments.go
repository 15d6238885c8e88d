package store

import (
	"context"
)

// DurableSlot is the single persisted location holding the serialized
// appointment collection. Load reports found=false when nothing has been
// saved yet. Implementations do not interpret the payload.
//
// Slot access has no locking or versioning across processes; concurrent
// writers from independent instances clobber each other, last write wins.
type DurableSlot interface {
	Load(ctx context.Context) (data []byte, found bool, err error)
	Save(ctx context.Context, data []byte) error
}
