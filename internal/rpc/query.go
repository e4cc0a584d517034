// Package rpc holds the query and row shapes the CLI and the remote store
// exchange, and their conversion to the locagri.v1 protobuf messages.
package rpc

// Row is one record returned by Query. Embedded relations appear as
// nested Rows under the relation name.
type Row = map[string]any

// Filter is an equality predicate on a column of the queried table.
type Filter struct {
	Column string
	Value  any
}

// Embed requests columns of a related table, joined with inner-join
// semantics: rows without a match are dropped.
type Embed struct {
	Relation string
	Columns  []string
}

// Query selects Columns from Table. With Single set, the result must hold
// exactly one row.
type Query struct {
	Table   string
	Columns []string
	Filters []Filter
	Embeds  []Embed
	Single  bool
}

// Eq adds an equality filter and returns q.
func (q Query) Eq(column string, value any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Column: column, Value: value})
	return q
}

// Join adds an embedded relation and returns q.
func (q Query) Join(relation string, columns ...string) Query {
	q.Embeds = append(append([]Embed(nil), q.Embeds...), Embed{Relation: relation, Columns: columns})
	return q
}
