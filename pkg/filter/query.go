package filter

// Column identifies a column of a specific table.
type Column struct {
	Table string
	Name  string
}

// Col builds a Column.
func Col(table, name string) Column {
	return Column{Table: table, Name: name}
}

func (c Column) String() string {
	if c.Table == "" {
		return c.Name
	}
	return c.Table + "." + c.Name
}

// Predicate is a single compiled filter condition.
// Value is unset for OpIsNull and OpNotNull.
type Predicate struct {
	Column Column
	Op     Op
	Value  any
}

// Criterion is implemented by Search and NullableSearch only.
type Criterion interface {
	predicate(col Column) (Predicate, bool)
}

// Field pairs a column with the criterion applied to it.
type Field struct {
	Column    Column
	Criterion Criterion
}

// On builds a Field.
func On(col Column, c Criterion) Field {
	return Field{Column: col, Criterion: c}
}

// Join is an inner join of Table on Left = Right.
type Join struct {
	Table string
	Left  Column
	Right Column
}

// Projection selects Column under Alias. An empty Alias keeps the column name.
type Projection struct {
	Column Column
	Alias  string
}

// Source is the table, or inner-join chain of tables, a query reads from.
// An empty Select reads every column of Table.
type Source struct {
	Table  string
	Joins  []Join
	Select []Projection
}

// Query is a backend-independent filtered read.
// Every predicate in Where is ANDed.
type Query struct {
	Source Source
	Where  []Predicate
}

// Compile folds fields into an AND list of predicates over src.
// Fields carrying NoSearch contribute nothing; with no remaining predicates the
// query reads every row of the source.
func Compile(src Source, fields ...Field) Query {
	where := make([]Predicate, 0, len(fields))
	for _, f := range fields {
		if f.Criterion == nil {
			continue
		}
		if p, ok := f.Criterion.predicate(f.Column); ok {
			where = append(where, p)
		}
	}

	return Query{Source: src, Where: where}
}
