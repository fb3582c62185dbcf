package interfaces

// IDGenerator produces blueprint identifiers for bot creation payloads.
// Implementations must be safe for concurrent use.
type IDGenerator interface {
	NewID() string
}
