package service

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// RandomUUIDProvider yields random version 4 UUIDs.
type RandomUUIDProvider struct{}

func NewRandomUUIDProvider() RandomUUIDProvider {
	return RandomUUIDProvider{}
}

func (RandomUUIDProvider) Generate() uuid.UUID {
	return uuid.New()
}

// SequenceUUIDProvider yields a reproducible sequence of name-based UUIDs
// derived from a seed. Two providers with the same seed produce the same IDs.
type SequenceUUIDProvider struct {
	mu   sync.Mutex
	seed uuid.UUID
	n    uint64
}

func NewSequenceUUIDProvider(seed uuid.UUID) *SequenceUUIDProvider {
	return &SequenceUUIDProvider{seed: seed}
}

func (p *SequenceUUIDProvider) Generate() uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.n++
	return uuid.NewSHA1(p.seed, []byte(strconv.FormatUint(p.n, 10)))
}
