package repositories

// MatchOp selects how a criterion compares a field against its value.
type MatchOp int

const (
	// MatchEquals requires an exact field match.
	MatchEquals MatchOp = iota
	// MatchSubstring requires a case-insensitive substring match.
	MatchSubstring
)

// Criterion is a single field condition. Criteria in a query are combined
// with logical AND.
type Criterion struct {
	Field string
	Op    MatchOp
	Value string
}

// Query describes a filtered, optionally sorted and limited collection scan.
// It is store-agnostic; each repository implementation translates it to its
// native query language.
type Query struct {
	Criteria  []Criterion
	SortField string
	SortDesc  bool
	Limit     int64
}

// NewQuery returns an empty query matching every document.
func NewQuery() *Query {
	return &Query{}
}

// Where adds an exact-match criterion.
func (q *Query) Where(field, value string) *Query {
	q.Criteria = append(q.Criteria, Criterion{Field: field, Op: MatchEquals, Value: value})
	return q
}

// Match adds a case-insensitive substring criterion.
func (q *Query) Match(field, value string) *Query {
	q.Criteria = append(q.Criteria, Criterion{Field: field, Op: MatchSubstring, Value: value})
	return q
}

// SortNewest sorts descending on the given field.
func (q *Query) SortNewest(field string) *Query {
	q.SortField = field
	q.SortDesc = true
	return q
}

// WithLimit caps the number of returned documents.
func (q *Query) WithLimit(n int64) *Query {
	q.Limit = n
	return q
}
