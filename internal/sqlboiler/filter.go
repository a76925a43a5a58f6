package sqlboiler

import (
	"fmt"
	"strings"

	"department-api/pkg/filter"

	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/aarondl/strmangle"
)

// likeEscaper makes a prefix literal inside a LIKE pattern whose escape character is '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QueryMods renders a compiled filter.Query as sqlboiler query mods for dialect d.
func QueryMods(d *drivers.Dialect, q filter.Query) []qm.QueryMod {
	mods := make([]qm.QueryMod, 0, 2+len(q.Source.Joins)+len(q.Where))

	if len(q.Source.Select) > 0 {
		cols := make([]string, len(q.Source.Select))
		for i, p := range q.Source.Select {
			cols[i] = projection(d, p)
		}
		mods = append(mods, qm.Select(cols...))
	}

	mods = append(mods, qm.From(quoteIdent(d, q.Source.Table)))

	for _, j := range q.Source.Joins {
		mods = append(mods, qm.InnerJoin(fmt.Sprintf("%s ON %s = %s",
			quoteIdent(d, j.Table), quoteColumn(d, j.Left), quoteColumn(d, j.Right))))
	}

	for _, p := range q.Where {
		mods = append(mods, whereMod(d, p))
	}

	return mods
}

func whereMod(d *drivers.Dialect, p filter.Predicate) qm.QueryMod {
	col := quoteColumn(d, p.Column)

	switch p.Op {
	case filter.OpPrefix:
		prefix, _ := p.Value.(string)
		return qm.Where(col+` LIKE ? ESCAPE '\'`, likeEscaper.Replace(prefix)+"%")
	case filter.OpIsNull:
		return qm.Where(col + " IS NULL")
	case filter.OpNotNull:
		return qm.Where(col + " IS NOT NULL")
	default:
		if v, ok := p.Value.(uint64); ok && !ValidID(v) {
			return qm.Where("1 = 0")
		}
		return qm.Where(col+" = ?", p.Value)
	}
}

func projection(d *drivers.Dialect, p filter.Projection) string {
	if p.Alias == "" {
		return quoteColumn(d, p.Column)
	}
	return quoteColumn(d, p.Column) + " AS " + quoteIdent(d, p.Alias)
}

func quoteColumn(d *drivers.Dialect, c filter.Column) string {
	return strmangle.IdentQuote(d.LQ, d.RQ, c.String())
}

func quoteIdent(d *drivers.Dialect, name string) string {
	return strmangle.IdentQuote(d.LQ, d.RQ, name)
}
