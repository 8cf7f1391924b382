package discovery

// paginate slices items to [offset, offset+limit). Slicing past the end is an
// empty result, not an error; limit and offset are validated upstream.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
