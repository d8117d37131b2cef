package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/loveletter/internal/common/uuid Generator

// Generator hands out unique identifiers
type Generator interface {
	NewUUID() string
}

// Random implements Generator with random version 4 UUIDs
type Random struct{}

func New() *Random {
	return &Random{}
}

// NewUUID returns a new UUID
func (r *Random) NewUUID() string {
	return uuid.NewString()
}
