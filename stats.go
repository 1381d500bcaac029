package cedar

// NumKeys returns the number of keys currently stored.
func (da *Cedar) NumKeys() int {
	return da.keyCount
}

// Len is an alias for NumKeys, for callers that treat Cedar as a
// container.
func (da *Cedar) Len() int {
	return da.keyCount
}

// ArrayCapacity returns the number of allocated double-array cells,
// exposed for introspection and tests; it has no bearing on key count.
func (da *Cedar) ArrayCapacity() int {
	return da.Capacity
}
