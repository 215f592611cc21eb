package allocation

import (
	"math/rand/v2"

	"github.com/Dolapo001/SPAS/internal/database/models"
	apperrors "github.com/Dolapo001/SPAS/internal/errors"
)

// Allocator resolves a method to its strategy and runs it. Each call gets a
// fresh random source, so an Allocator is safe for concurrent use.
type Allocator struct {
	newRand func() *rand.Rand
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithSeed makes every run reproducible by seeding each call identically.
func WithSeed(seed1, seed2 uint64) Option {
	return func(a *Allocator) {
		a.newRand = func() *rand.Rand {
			return rand.New(rand.NewPCG(seed1, seed2))
		}
	}
}

// NewAllocator creates an Allocator seeded from the runtime source unless
// overridden.
func NewAllocator(opts ...Option) *Allocator {
	a := &Allocator{
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ForMethod returns the strategy for method.
func ForMethod(method models.AllocationMethod, rng *rand.Rand) (Strategy, error) {
	switch method {
	case models.AllocationMethodGradeBased:
		return GradeBased{}, nil
	case models.AllocationMethodRandom:
		return NewRandom(rng), nil
	case models.AllocationMethodBalanced:
		return NewBalanced(rng), nil
	}
	return nil, apperrors.ErrInvalidAllocationMethod
}

// Allocate partitions students with the strategy named by method.
func (a *Allocator) Allocate(method models.AllocationMethod, students []models.Student, supervisors []models.Supervisor, numGroups int) ([]Assignment, error) {
	strategy, err := ForMethod(method, a.newRand())
	if err != nil {
		return nil, err
	}
	return strategy.Assign(students, supervisors, numGroups)
}
