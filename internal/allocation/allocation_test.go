package allocation

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/Dolapo001/SPAS/internal/database/models"
	apperrors "github.com/Dolapo001/SPAS/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeStudents(scores ...float64) []models.Student {
	out := make([]models.Student, len(scores))
	for i, score := range scores {
		out[i] = models.Student{
			BaseModel: models.BaseModel{ID: uuid.New()},
			MatricNo:  fmt.Sprintf("MAT/%03d", i+1),
			Score:     score,
		}
	}
	return out
}

func makeSupervisors(names ...string) []models.Supervisor {
	out := make([]models.Supervisor, len(names))
	for i, name := range names {
		out[i] = models.Supervisor{BaseModel: models.BaseModel{ID: uuid.New()}, Name: name}
	}
	return out
}

func spreadScores(n int) []float64 {
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = float64((i*37)%501) / 100
	}
	return scores
}

func memberIDs(groups []Assignment) map[uuid.UUID]int {
	seen := make(map[uuid.UUID]int)
	for _, g := range groups {
		for _, s := range g.Students {
			seen[s.ID]++
		}
	}
	return seen
}

func strategies() map[string]Strategy {
	return map[string]Strategy{
		"grade_based": GradeBased{},
		"random":      NewRandom(rand.New(rand.NewPCG(1, 2))),
		"balanced":    NewBalanced(rand.New(rand.NewPCG(1, 2))),
	}
}

func TestStrategies_CoverageAndCount(t *testing.T) {
	for name, strategy := range strategies() {
		for _, numGroups := range []int{1, 2, 3, 7} {
			t.Run(fmt.Sprintf("%s/%d groups", name, numGroups), func(t *testing.T) {
				students := makeStudents(spreadScores(23)...)
				supervisors := makeSupervisors("A", "B", "C", "D", "E", "F", "G")

				groups, err := strategy.Assign(students, supervisors, numGroups)

				require.NoError(t, err)
				require.Len(t, groups, numGroups)

				total := 0
				for i, g := range groups {
					assert.Equal(t, i+1, g.Number)
					total += len(g.Students)
				}
				assert.Equal(t, len(students), total)

				seen := memberIDs(groups)
				require.Len(t, seen, len(students))
				for _, s := range students {
					assert.Equal(t, 1, seen[s.ID], "student %s", s.MatricNo)
				}
			})
		}
	}
}

func TestStrategies_EmptyGroupsWhenFewStudents(t *testing.T) {
	for name, strategy := range strategies() {
		t.Run(name, func(t *testing.T) {
			groups, err := strategy.Assign(makeStudents(3.0), makeSupervisors("A", "B", "C"), 3)

			require.NoError(t, err)
			require.Len(t, groups, 3)
			assert.Len(t, groups[0].Students, 1)
			assert.Empty(t, groups[1].Students)
			assert.Empty(t, groups[2].Students)
		})
	}
}

func TestStrategies_SupervisorRoundRobin(t *testing.T) {
	supervisors := makeSupervisors("A", "B")

	groups, err := GradeBased{}.Assign(makeStudents(spreadScores(6)...), supervisors, 3)

	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "A", groups[0].Supervisor.Name)
	assert.Equal(t, "B", groups[1].Supervisor.Name)
	assert.Equal(t, "A", groups[2].Supervisor.Name)
}

func TestStrategies_DoNotMutateInputs(t *testing.T) {
	for name, strategy := range strategies() {
		t.Run(name, func(t *testing.T) {
			students := makeStudents(1.2, 4.8, 3.3, 4.6, 2.0, 0.5)
			supervisors := makeSupervisors("A", "B")
			studentsBefore := append([]models.Student(nil), students...)
			supervisorsBefore := append([]models.Supervisor(nil), supervisors...)

			_, err := strategy.Assign(students, supervisors, 2)

			require.NoError(t, err)
			assert.Equal(t, studentsBefore, students)
			assert.Equal(t, supervisorsBefore, supervisors)
		})
	}
}

func TestStrategies_RejectZeroGroups(t *testing.T) {
	for name, strategy := range strategies() {
		t.Run(name, func(t *testing.T) {
			_, err := strategy.Assign(makeStudents(3.0), makeSupervisors("A"), 0)
			assert.ErrorIs(t, err, apperrors.ErrInvalidGroupCount)
		})
	}
}

func TestGradeBased_EndToEndScenario(t *testing.T) {
	students := makeStudents(4.70, 2.00, 4.90, 3.80, 4.50, 3.00, 4.80, 2.50, 4.60, 4.00)
	supervisors := makeSupervisors("Dr. Ade", "Dr. Bello")

	groups, err := GradeBased{}.Assign(students, supervisors, 2)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	scoresOf := func(g Assignment) []float64 {
		out := make([]float64, 0, len(g.Students))
		for _, s := range g.Students {
			out = append(out, s.Score)
		}
		return out
	}

	assert.Len(t, groups[0].Students, 5)
	assert.Len(t, groups[1].Students, 5)
	assert.Equal(t, []float64{4.90, 4.70, 4.50, 3.80, 2.50}, scoresOf(groups[0]))
	assert.Equal(t, []float64{4.80, 4.60, 4.00, 3.00, 2.00}, scoresOf(groups[1]))

	again, err := GradeBased{}.Assign(students, supervisors, 2)
	require.NoError(t, err)
	assert.Equal(t, groups, again)
}

func TestGradeBased_SeedsAtMostThreePerGroup(t *testing.T) {
	// 8 first class students, 2 groups: only the top 6 are seeded
	students := makeStudents(5.00, 4.95, 4.90, 4.85, 4.80, 4.75, 4.70, 4.65, 1.00)

	groups, err := GradeBased{}.Assign(students, makeSupervisors("A", "B"), 2)

	require.NoError(t, err)
	assert.Equal(t, 5.00, groups[0].Students[0].Score)
	assert.Equal(t, 4.95, groups[1].Students[0].Score)
	assert.Len(t, groups[0].Students, 5)
	assert.Len(t, groups[1].Students, 4)
}

func TestGradeBased_TiesKeepInputOrder(t *testing.T) {
	students := makeStudents(3.00, 3.00, 3.00, 3.00)

	groups, err := GradeBased{}.Assign(students, makeSupervisors("A", "B"), 2)

	require.NoError(t, err)
	assert.Equal(t, students[0].ID, groups[0].Students[0].ID)
	assert.Equal(t, students[1].ID, groups[1].Students[0].ID)
	assert.Equal(t, students[2].ID, groups[0].Students[1].ID)
}

func TestRandom_DifferentSeedsDiffer(t *testing.T) {
	students := makeStudents(spreadScores(30)...)
	supervisors := makeSupervisors("A", "B", "C")

	first, err := NewRandom(rand.New(rand.NewPCG(1, 2))).Assign(students, supervisors, 3)
	require.NoError(t, err)
	second, err := NewRandom(rand.New(rand.NewPCG(99, 7))).Assign(students, supervisors, 3)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	same, err := NewRandom(rand.New(rand.NewPCG(1, 2))).Assign(students, supervisors, 3)
	require.NoError(t, err)
	assert.Equal(t, first, same)
}

func TestBalanced_TierShareDiffersByAtMostOne(t *testing.T) {
	students := makeStudents(spreadScores(41)...)

	for _, numGroups := range []int{2, 3, 4, 6} {
		t.Run(fmt.Sprintf("%d groups", numGroups), func(t *testing.T) {
			groups, err := NewBalanced(rand.New(rand.NewPCG(5, 8))).Assign(students, makeSupervisors("A", "B", "C", "D", "E", "F"), numGroups)
			require.NoError(t, err)

			for _, tier := range models.Classifications() {
				lo, hi := len(students), 0
				for _, g := range groups {
					n := 0
					for _, s := range g.Students {
						if s.Classification() == tier {
							n++
						}
					}
					lo = min(lo, n)
					hi = max(hi, n)
				}
				assert.LessOrEqual(t, hi-lo, 1, "tier %s", tier)
			}
		})
	}
}

func TestBucket(t *testing.T) {
	students := makeStudents(4.50, 0.20, 3.60, 4.90, 1.20)

	buckets := Bucket(students)

	assert.Len(t, buckets[models.ClassificationFirst], 2)
	assert.Len(t, buckets[models.ClassificationSecondUpper], 1)
	assert.Len(t, buckets[models.ClassificationPass], 1)
	assert.Len(t, buckets[models.ClassificationFail], 1)
	assert.Empty(t, buckets[models.ClassificationThird])
	assert.Equal(t, students[0].ID, buckets[models.ClassificationFirst][0].ID)
}

func TestOrderSupervisors(t *testing.T) {
	t.Run("unused first with stable order", func(t *testing.T) {
		pool := makeSupervisors("A", "B", "C")
		used := UsedSet([]uuid.UUID{pool[1].ID})

		ordered := OrderSupervisors(pool, used)

		names := []string{ordered[0].Name, ordered[1].Name, ordered[2].Name}
		assert.Equal(t, []string{"A", "C", "B"}, names)
	})

	t.Run("all used keeps pool order", func(t *testing.T) {
		pool := makeSupervisors("A", "B", "C")
		used := UsedSet([]uuid.UUID{pool[2].ID, pool[0].ID, pool[1].ID})

		ordered := OrderSupervisors(pool, used)

		assert.Equal(t, pool, ordered)
	})

	t.Run("ignores unknown used ids", func(t *testing.T) {
		pool := makeSupervisors("A", "B")

		ordered := OrderSupervisors(pool, UsedSet([]uuid.UUID{uuid.New()}))

		assert.Equal(t, pool, ordered)
	})

	t.Run("does not touch the pool", func(t *testing.T) {
		pool := makeSupervisors("A", "B", "C")
		before := append([]models.Supervisor(nil), pool...)

		OrderSupervisors(pool, UsedSet([]uuid.UUID{pool[0].ID}))

		assert.Equal(t, before, pool)
	})
}

func TestAllocator(t *testing.T) {
	students := makeStudents(spreadScores(12)...)
	supervisors := makeSupervisors("A", "B", "C")

	t.Run("seeded allocator is reproducible", func(t *testing.T) {
		a := NewAllocator(WithSeed(3, 4))

		first, err := a.Allocate(models.AllocationMethodRandom, students, supervisors, 3)
		require.NoError(t, err)
		second, err := a.Allocate(models.AllocationMethodRandom, students, supervisors, 3)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("every method is resolvable", func(t *testing.T) {
		a := NewAllocator()
		for _, method := range []models.AllocationMethod{
			models.AllocationMethodGradeBased,
			models.AllocationMethodRandom,
			models.AllocationMethodBalanced,
		} {
			groups, err := a.Allocate(method, students, supervisors, 2)
			require.NoError(t, err, method)
			assert.Len(t, groups, 2)
		}
	})

	t.Run("unknown method is a validation error", func(t *testing.T) {
		_, err := NewAllocator().Allocate("alphabetical", students, supervisors, 2)

		assert.ErrorIs(t, err, apperrors.ErrInvalidAllocationMethod)
		assert.True(t, apperrors.IsValidation(err))
	})
}
