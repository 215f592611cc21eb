// Package allocation partitions a department's unassigned students into
// supervised project groups.
//
// Three strategies are provided:
//
//   - GradeBased: seeds every group with top scorers, then deals the rest by score
//   - Random: shuffles the pool and deals it round-robin
//   - Balanced: spreads each classification tier evenly across groups
//
// Strategies are pure. They copy their inputs, never touch storage and always
// return exactly numGroups assignments, some of which may be empty. Supervisor
// ordering is handled separately by OrderSupervisors.
package allocation
