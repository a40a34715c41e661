package probe

// ChangeCache maps a probe id to its computed image change indices. Entries
// live for the whole run; there is no eviction.
type ChangeCache struct {
	entries map[string][]int
}

func NewChangeCache() *ChangeCache {
	return &ChangeCache{entries: make(map[string][]int)}
}

// Get returns the cached indices for id, computing and storing them on the
// first request.
func (c *ChangeCache) Get(id string, compute func() []int) []int {
	if inds, ok := c.entries[id]; ok {
		return inds
	}
	inds := compute()
	c.entries[id] = inds
	return inds
}

func (c *ChangeCache) Len() int { return len(c.entries) }
