package identifier

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/xcsbridge/pkg/domain/interfaces"
)

type uuidGenerator struct{}

// NewUUID returns a generator of random version 4 UUIDs in the uppercase
// form Xcode writes into blueprints
func NewUUID() interfaces.IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return strings.ToUpper(uuid.NewString())
}

// Fixed always returns the same identifier. Use it for reproducible payloads.
type Fixed string

func (f Fixed) NewID() string {
	return string(f)
}
