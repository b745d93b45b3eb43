package invoice

// KV is the persistence collaborator: a key-value store with last-write-wins
// semantics. Absence on read is not an error; it means "not yet
// initialized".
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}
