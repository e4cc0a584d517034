// Package query validates record queries against a catalog of exposed
// tables and compiles them into parameterized PostgreSQL statements.
package query

// ColumnType drives coercion of decoded filter values to SQL parameters.
type ColumnType int

const (
	Text ColumnType = iota
	Integer
	Float
	Bool
	Date
	Timestamp
)

// Relation links a table to another through LocalColumn = ForeignColumn.
type Relation struct {
	Table         string
	LocalColumn   string
	ForeignColumn string
}

// Table describes one exposed table. Key orders result rows.
type Table struct {
	Name      string
	Key       string
	Columns   map[string]ColumnType
	Relations map[string]Relation
}

// Catalog is the whitelist of tables, columns and relations a client may
// query. Anything outside it is rejected before SQL is built.
type Catalog struct {
	tables map[string]Table
}

func NewCatalog(tables ...Table) *Catalog {
	c := &Catalog{tables: make(map[string]Table, len(tables))}
	for _, t := range tables {
		c.tables[t.Name] = t
	}
	return c
}

func (c *Catalog) Table(name string) (Table, bool) {
	t, ok := c.tables[name]
	return t, ok
}

// DefaultCatalog exposes the operator registry schema.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Table{
			Name: "operators",
			Key:  "cin_id",
			Columns: map[string]ColumnType{
				"cin_id":     Text,
				"last_name":  Text,
				"first_name": Text,
				"sex":        Bool,
				"birth_date": Date,
				"created_at": Timestamp,
				"type_id":    Integer,
			},
			Relations: map[string]Relation{
				"operator_types": {Table: "operator_types", LocalColumn: "type_id", ForeignColumn: "type_id"},
			},
		},
		Table{
			Name: "operator_types",
			Key:  "type_id",
			Columns: map[string]ColumnType{
				"type_id": Integer,
				"label":   Text,
			},
		},
		Table{
			Name: "land_plots",
			Key:  "id",
			Columns: map[string]ColumnType{
				"id":          Integer,
				"owner_cin":   Text,
				"position_id": Integer,
				"area_sqm":    Float,
			},
			Relations: map[string]Relation{
				"positions": {Table: "positions", LocalColumn: "position_id", ForeignColumn: "position_id"},
				"operators": {Table: "operators", LocalColumn: "owner_cin", ForeignColumn: "cin_id"},
			},
		},
		Table{
			Name: "positions",
			Key:  "position_id",
			Columns: map[string]ColumnType{
				"position_id": Integer,
				"latitude":    Float,
				"longitude":   Float,
			},
		},
	)
}
