package store

import (
	"sort"

	"github.com/roach88/serdex/cueval"
	"github.com/roach88/serdex/model"
)

// Validator is the schema-validation collaborator invoked during record
// creation. It receives the schema and the normalized field values and
// reports every violation it finds.
type Validator interface {
	Validate(sc *model.Schema, fields model.Map) error
}

// Store holds records partitioned by schema name, each partition kept in
// ascending key order. The zero value is not usable; construct with New.
type Store struct {
	collections map[string]*collection
	validator   Validator
}

// Option configures a Store.
type Option func(*Store)

// WithValidator replaces the validator used by the record lifecycle.
func WithValidator(v Validator) Option {
	return func(s *Store) { s.validator = v }
}

// New constructs an empty store. The record lifecycle validates through the
// CUE validator unless WithValidator overrides it.
func New(opts ...Option) *Store {
	s := &Store{collections: make(map[string]*collection)}
	for _, opt := range opts {
		opt(s)
	}
	if s.validator == nil {
		s.validator = cueval.New()
	}
	return s
}

// collection is one schema's records: a slice kept sorted by (key tuple,
// identity hash) plus an identity index for duplicate detection.
type collection struct {
	recs       []*model.Record
	byIdentity map[string]*model.Record
}

func (c *collection) insert(rec *model.Record) {
	i := sort.Search(len(c.recs), func(i int) bool {
		return compareRecords(c.recs[i], rec) >= 0
	})
	c.recs = append(c.recs, nil)
	copy(c.recs[i+1:], c.recs[i:])
	c.recs[i] = rec
	c.byIdentity[rec.Identity()] = rec
}

// compareRecords orders by key tuple, breaking ties with the identity hash.
func compareRecords(a, b *model.Record) int {
	if c := model.CompareKeys(a.Key(), b.Key()); c != 0 {
		return c
	}
	switch {
	case a.Identity() < b.Identity():
		return -1
	case a.Identity() > b.Identity():
		return 1
	default:
		return 0
	}
}

// Save inserts rec into the collection for its schema, creating the
// collection on first use. An exact duplicate (same identity hash and same
// canonical form) is a no-op, or an *AlreadyExistsError if the schema's
// duplicate policy demands one.
func (s *Store) Save(rec *model.Record) error {
	sc := rec.Schema()
	c, ok := s.collections[sc.Name]
	if !ok {
		c = &collection{byIdentity: make(map[string]*model.Record)}
		s.collections[sc.Name] = c
	}

	if existing, ok := c.byIdentity[rec.Identity()]; ok && existing.Canonical() == rec.Canonical() {
		if sc.ErrOnDuplicate {
			return &AlreadyExistsError{Type: sc.Name, KeyFields: sc.KeyFields, Key: rec.Key()}
		}
		return nil
	}

	c.insert(rec)
	return nil
}

// Filter returns the records of sc for which every param field equals the
// given value. Matching is conjunctive and exact; records missing a param
// field never match. An empty or nil params returns the whole collection.
// The result is a copy in key order.
func (s *Store) Filter(sc *model.Schema, params map[string]any) ([]*model.Record, error) {
	all := s.GetAll(sc)
	if len(params) == 0 {
		return all, nil
	}

	want := make(model.Map, len(params))
	for k, v := range params {
		conv, err := model.FromAny(v)
		if err != nil {
			return nil, err
		}
		want[k] = conv
	}

	var out []*model.Record
	for _, rec := range all {
		if matches(rec, want) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func matches(rec *model.Record, want model.Map) bool {
	for k, v := range want {
		got, ok := rec.Field(k)
		if !ok || !model.Equal(got, v) {
			return false
		}
	}
	return true
}

// Get returns the single record of sc matching params. Zero matches fail
// with *DoesNotExistError, more than one with *MultipleReturnedError.
func (s *Store) Get(sc *model.Schema, params map[string]any) (*model.Record, error) {
	found, err := s.Filter(sc, params)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, &DoesNotExistError{Type: sc.Name, Params: params}
	}
	if len(found) > 1 {
		return nil, &MultipleReturnedError{Type: sc.Name, Params: params, Count: len(found)}
	}
	return found[0], nil
}

// GetAll returns every record of sc in key order. The slice is a copy;
// mutating it does not affect the store.
func (s *Store) GetAll(sc *model.Schema) []*model.Record {
	c, ok := s.collections[sc.Name]
	if !ok {
		return []*model.Record{}
	}
	out := make([]*model.Record, len(c.recs))
	copy(out, c.recs)
	return out
}

// Len returns the number of records stored for sc.
func (s *Store) Len(sc *model.Schema) int {
	c, ok := s.collections[sc.Name]
	if !ok {
		return 0
	}
	return len(c.recs)
}
