package store

import "sort"

// Export produces a plain nested mapping of the store's contents: schema
// name to the ordered list of each record's field values as a mapping. The
// result is a read-only snapshot suitable for handing to a codec dumper;
// building it does not mutate the store.
func (s *Store) Export() map[string]any {
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]any, len(names))
	for _, name := range names {
		c := s.collections[name]
		recs := make([]any, len(c.recs))
		for i, rec := range c.recs {
			recs[i] = rec.Export()
		}
		out[name] = recs
	}
	return out
}
