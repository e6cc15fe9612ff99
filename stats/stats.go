// Package stats computes derived aggregate views over a snapshot of the
// post collection. Everything here is a pure function: no hidden state,
// recomputed on every snapshot change, never mutating its input.
package stats

// UnknownAuthor is the placeholder substituted for a missing author name.
const UnknownAuthor = "Unknown"

// Authored is satisfied by any record that carries an author name.
type Authored interface {
	AuthorName() string
}

// AuthorStat is one author's share of the collection, shaped for chart
// series. The slice order is first appearance in the snapshot; consumers
// must treat it as an unordered set of name/count pairs.
type AuthorStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CountsByAuthor groups a snapshot by author, substituting UnknownAuthor
// for a missing name.
func CountsByAuthor[T Authored](items []T) []AuthorStat {
	index := make(map[string]int, len(items))
	var out []AuthorStat
	for _, it := range items {
		name := it.AuthorName()
		if name == "" {
			name = UnknownAuthor
		}
		if i, ok := index[name]; ok {
			out[i].Count++
			continue
		}
		index[name] = len(out)
		out = append(out, AuthorStat{Name: name, Count: 1})
	}
	return out
}

// ChartPoint is one series entry for the per-author charts, keyed the way
// the bar and pie components expect ("name"/"posts").
type ChartPoint struct {
	Name  string `json:"name"`
	Posts int    `json:"posts"`
}

// ChartData reshapes author stats into the chart series, preserving order.
func ChartData(stats []AuthorStat) []ChartPoint {
	out := make([]ChartPoint, len(stats))
	for i, s := range stats {
		out[i] = ChartPoint{Name: s.Name, Posts: s.Count}
	}
	return out
}

// Paginate returns page number page (1-indexed) of the snapshot at the
// given page size: the sub-sequence [(page-1)*size, page*size) clipped to
// the collection bounds. Out-of-range input yields an empty slice, the
// engine does not clamp; callers disable navigation at the boundaries.
func Paginate[S ~[]E, E any](items S, pageSize, page int) S {
	if pageSize <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageCount returns ceil(n / pageSize); an empty collection has zero pages
// (no slice, no pagination controls).
func PageCount(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}
