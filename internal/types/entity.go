package types

import (
	"time"

	"github.com/google/uuid"
)

// Entity carries the identity and audit fields shared by every stored record.
// ID and CreatedAt are assigned exactly once, at construction. Version is an
// opaque concurrency token owned by the repo layer: it is rewritten on every
// insert/update and compared-and-swapped to detect lost updates.
type Entity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	Version   []byte    `gorm:"type:bytea" json:"-"`
}
