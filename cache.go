package forgeutils

// TemplateCache is a bounded name-to-prefab registry so authoring scripts
// can register commonly reused assembled nodes and fetch them by name or
// registration index. Lookups return clones; the cached originals are never
// handed out.
type TemplateCache struct {
	nodes       []*Node
	nameIndices map[string]int
	maxCapacity int
}

// Register stores a clone of the node under the given name and returns its
// index. Names are unique; indices start at 0 and increment.
func (c *TemplateCache) Register(name string, n *Node) (int, error) {
	if _, exists := c.nameIndices[name]; exists {
		return -1, DuplicateTemplateError{Name: name}
	}
	if len(c.nameIndices) >= c.maxCapacity {
		return -1, CacheCapacityError{Capacity: c.maxCapacity}
	}

	idx := len(c.nodes)
	c.nameIndices[name] = idx
	c.nodes = append(c.nodes, n.Clone())

	return idx, nil
}

// GetIndex returns the registration index for a name.
func (c *TemplateCache) GetIndex(name string) (int, bool) {
	index, ok := c.nameIndices[name]
	return index, ok
}

// Get returns a clone of the named template.
func (c *TemplateCache) Get(name string) (*Node, bool) {
	idx, ok := c.nameIndices[name]
	if !ok {
		return nil, false
	}
	return c.nodes[idx].Clone(), true
}

// GetItem returns a clone of the template at the given index, or nil when
// out of range.
func (c *TemplateCache) GetItem(index int) *Node {
	if index < 0 || index >= len(c.nodes) {
		return nil
	}
	return c.nodes[index].Clone()
}

// Clear drops all registered templates, keeping the capacity.
func (c *TemplateCache) Clear() {
	c.nodes = nil
	c.nameIndices = make(map[string]int)
}
