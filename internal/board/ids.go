package board

// removeID returns ids without the first occurrence of id and the index it
// was found at, or ids itself and -1 when absent.
func removeID(ids []string, id string) ([]string, int) {
	for i, v := range ids {
		if v == id {
			out := make([]string, 0, len(ids)-1)
			out = append(out, ids[:i]...)
			return append(out, ids[i+1:]...), i
		}
	}
	return ids, -1
}

// insertAt returns a new slice with id placed before position index.
// An index past the end appends and a negative index inserts at the front.
func insertAt(ids []string, index int, id string) []string {
	if index < 0 {
		index = 0
	}
	if index > len(ids) {
		index = len(ids)
	}
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids[:index]...)
	out = append(out, id)
	return append(out, ids[index:]...)
}

// withoutAll returns ids with every occurrence of id dropped. The input is
// returned unchanged when it holds no match.
func withoutAll(ids []string, id string) []string {
	n := 0
	for _, v := range ids {
		if v == id {
			n++
		}
	}
	if n == 0 {
		return ids
	}
	out := make([]string, 0, len(ids)-n)
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// ReorderIDs moves the element at start so that it ends up at end, returning
// a new slice. Out of range start returns a copy of ids.
func ReorderIDs(ids []string, start, end int) []string {
	if start < 0 || start >= len(ids) {
		return append([]string(nil), ids...)
	}
	rest := make([]string, 0, len(ids)-1)
	rest = append(rest, ids[:start]...)
	rest = append(rest, ids[start+1:]...)
	return insertAt(rest, end, ids[start])
}

// MoveBetween takes the element at srcIndex out of src and inserts it into
// dst at dstIndex. Neither input is modified.
func MoveBetween(src, dst []string, srcIndex, dstIndex int) (source, destination []string) {
	if srcIndex < 0 || srcIndex >= len(src) {
		return append([]string(nil), src...), append([]string(nil), dst...)
	}
	moved := src[srcIndex]
	source = make([]string, 0, len(src)-1)
	source = append(source, src[:srcIndex]...)
	source = append(source, src[srcIndex+1:]...)
	return source, insertAt(dst, dstIndex, moved)
}
