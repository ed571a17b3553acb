package merkle

// StoreConfig locates one persisted tree or label store on disk. Stores are
// written by the replication phases and read back by the proving phases, so
// the config is serialized alongside the data it describes.
type StoreConfig struct {
	// ID distinguishes this store from its siblings under the same path,
	// e.g. "layer-1" or "tree-d".
	ID string `json:"id"`

	// Path is the directory the store is persisted under.
	Path string `json:"path"`

	// RowsToDiscard is the number of cached rows a level-cached store drops
	// on disk; see DefaultRowsToDiscard.
	RowsToDiscard uint `json:"rows_to_discard"`

	// Size is the number of elements in the store, when known.
	Size uint64 `json:"size,omitempty"`
}

// NewStoreConfig returns a store config rooted at path under the given
// identifier. The element count is unknown until the store is written.
func NewStoreConfig(path, id string, rowsToDiscard uint) StoreConfig {
	return StoreConfig{
		ID:            id,
		Path:          path,
		RowsToDiscard: rowsToDiscard,
	}
}

// Labels lists the per-layer label stores produced by replication, ordered
// from the first encoding layer to the last.
type Labels struct {
	Labels []StoreConfig `json:"labels"`
}
