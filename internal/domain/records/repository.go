package records

// SnapshotRepository persists the full store state. Every mutation rewrites
// the whole snapshot; there is no incremental persistence.
type SnapshotRepository interface {
	// Load reads the persisted state. Returns (nil, nil) when no snapshot
	// exists yet.
	Load() (*State, error)

	// Save atomically rewrites the persisted state.
	Save(state *State) error
}
