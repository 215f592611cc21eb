package allocation

import (
	"github.com/Dolapo001/SPAS/internal/database/models"

	"github.com/google/uuid"
)

// OrderSupervisors returns the pool with supervisors that never owned a group
// first, followed by previously used ones. Relative order is kept within both
// partitions.
func OrderSupervisors(pool []models.Supervisor, used map[uuid.UUID]struct{}) []models.Supervisor {
	ordered := make([]models.Supervisor, 0, len(pool))
	var reused []models.Supervisor
	for _, s := range pool {
		if _, ok := used[s.ID]; ok {
			reused = append(reused, s)
			continue
		}
		ordered = append(ordered, s)
	}
	return append(ordered, reused...)
}

// UsedSet builds the lookup used by OrderSupervisors.
func UsedSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
