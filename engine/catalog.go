package engine

// Catalog holds every created table for the life of one engine instance. It
// is insertion ordered and unique by schema and name. Nothing is ever
// dropped and nothing is persisted; the catalog dies with the instance.
type Catalog struct {
	tables []*Table
	byName map[tableKey]*Table
}

// tableKey keeps schema and name as separate fields so a table named "a.b"
// cannot collide with table b in schema a.
type tableKey struct {
	schema string
	name   string
}

func NewCatalog() *Catalog {
	return &Catalog{
		byName: map[tableKey]*Table{},
	}
}

// Put installs t under its schema and name and reports true. When a table
// already exists under the same key Put is a no-op and reports false: the
// existing table and its data are left untouched.
func (c *Catalog) Put(t *Table) bool {
	key := tableKey{schema: t.schema, name: t.name}
	if _, ok := c.byName[key]; ok {
		return false
	}
	c.tables = append(c.tables, t)
	c.byName[key] = t
	return true
}

// Get looks a table up by schema and name. schema is empty for an
// unqualified name.
func (c *Catalog) Get(schema, name string) (*Table, bool) {
	t, ok := c.byName[tableKey{schema: schema, name: name}]
	return t, ok
}

// Tables returns the tables in insertion order.
func (c *Catalog) Tables() []*Table {
	return c.tables
}
