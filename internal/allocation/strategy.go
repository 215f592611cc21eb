package allocation

import (
	"math/rand/v2"
	"sort"

	"github.com/Dolapo001/SPAS/internal/database/models"
	apperrors "github.com/Dolapo001/SPAS/internal/errors"

	"github.com/google/uuid"
)

// Assignment is one group produced by a strategy.
type Assignment struct {
	Number     int
	Supervisor *models.Supervisor
	Students   []models.Student
}

// Strategy partitions students into numGroups supervised groups.
type Strategy interface {
	Assign(students []models.Student, supervisors []models.Supervisor, numGroups int) ([]Assignment, error)
}

var (
	_ Strategy = GradeBased{}
	_ Strategy = (*Random)(nil)
	_ Strategy = (*Balanced)(nil)
)

// newAssignments numbers groups from 1 and hands out supervisors round-robin.
func newAssignments(supervisors []models.Supervisor, numGroups int) ([]Assignment, error) {
	if numGroups < 1 {
		return nil, apperrors.ErrInvalidGroupCount
	}
	out := make([]Assignment, numGroups)
	for i := range out {
		out[i].Number = i + 1
		if len(supervisors) > 0 {
			sup := supervisors[i%len(supervisors)]
			out[i].Supervisor = &sup
		}
	}
	return out, nil
}

// deal appends students round-robin starting at group index start and
// returns the index of the next group in the rotation.
func deal(groups []Assignment, students []models.Student, start int) int {
	idx := start
	for _, s := range students {
		groups[idx].Students = append(groups[idx].Students, s)
		idx = (idx + 1) % len(groups)
	}
	return idx
}

func copyStudents(students []models.Student) []models.Student {
	out := make([]models.Student, len(students))
	copy(out, students)
	return out
}

// GradeBased spreads first class students before dealing everyone else in
// descending score order. It has no randomness.
type GradeBased struct{}

// Assign implements Strategy.
func (GradeBased) Assign(students []models.Student, supervisors []models.Supervisor, numGroups int) ([]Assignment, error) {
	groups, err := newAssignments(supervisors, numGroups)
	if err != nil {
		return nil, err
	}

	sorted := copyStudents(students)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	var firstClass []models.Student
	for _, s := range sorted {
		if models.IsFirstClassScore(s.Score) {
			firstClass = append(firstClass, s)
		}
	}
	seeded := firstClass[:min(3*numGroups, len(firstClass))]
	next := deal(groups, seeded, 0)

	taken := make(map[uuid.UUID]struct{}, len(seeded))
	for _, s := range seeded {
		taken[s.ID] = struct{}{}
	}
	remaining := make([]models.Student, 0, len(sorted)-len(seeded))
	for _, s := range sorted {
		if _, ok := taken[s.ID]; !ok {
			remaining = append(remaining, s)
		}
	}
	deal(groups, remaining, next)

	return groups, nil
}

// Random deals a shuffled copy of the pool.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random strategy drawing from rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Assign implements Strategy.
func (r *Random) Assign(students []models.Student, supervisors []models.Supervisor, numGroups int) ([]Assignment, error) {
	groups, err := newAssignments(supervisors, numGroups)
	if err != nil {
		return nil, err
	}
	pool := copyStudents(students)
	r.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	deal(groups, pool, 0)
	return groups, nil
}

// Balanced shuffles each classification tier and deals every tier from the
// first group, so each tier's share per group differs by at most one.
// Tiers are processed from First Class down.
type Balanced struct {
	rng *rand.Rand
}

// NewBalanced creates a Balanced strategy drawing from rng.
func NewBalanced(rng *rand.Rand) *Balanced {
	return &Balanced{rng: rng}
}

// Assign implements Strategy.
func (b *Balanced) Assign(students []models.Student, supervisors []models.Supervisor, numGroups int) ([]Assignment, error) {
	groups, err := newAssignments(supervisors, numGroups)
	if err != nil {
		return nil, err
	}

	buckets := Bucket(students)
	for _, tier := range models.Classifications() {
		bucket := buckets[tier]
		b.rng.Shuffle(len(bucket), func(i, j int) { bucket[i], bucket[j] = bucket[j], bucket[i] })
		deal(groups, bucket, 0)
	}
	return groups, nil
}

// Bucket groups a copy of students by classification, keeping input order.
func Bucket(students []models.Student) map[models.Classification][]models.Student {
	buckets := make(map[models.Classification][]models.Student)
	for _, s := range students {
		tier := s.Classification()
		buckets[tier] = append(buckets[tier], s)
	}
	return buckets
}
