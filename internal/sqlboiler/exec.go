package sqlboiler

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/strmangle"
	"github.com/friendsofgo/errors"
)

// Changeset is an ordered column -> value mapping.
// Only columns explicitly added are written.
type Changeset struct {
	columns []string
	values  []any
}

// Set adds column = value to the changeset.
func (c *Changeset) Set(column string, value any) *Changeset {
	c.columns = append(c.columns, column)
	c.values = append(c.values, value)
	return c
}

// Empty reports whether no column was set.
func (c Changeset) Empty() bool {
	return len(c.columns) == 0
}

// Insert writes cs into table and returns the generated value of column pk.
func Insert(ctx context.Context, exec boil.ContextExecutor, d *drivers.Dialect, table, pk string, cs Changeset) (uint64, error) {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		quoteIdent(d, table),
		strings.Join(strmangle.IdentQuoteSlice(d.LQ, d.RQ, cs.columns), ","),
		strmangle.Placeholders(d.UseIndexPlaceholders, len(cs.columns), 1, 1),
		quoteIdent(d, pk),
	)

	if boil.IsDebug(ctx) {
		writer := boil.DebugWriterFrom(ctx)
		fmt.Fprintln(writer, query)
		fmt.Fprintln(writer, cs.values...)
	}

	var id uint64
	if err := exec.QueryRowContext(ctx, query, cs.values...).Scan(&id); err != nil {
		return 0, errors.Wrapf(err, "sqlboiler: unable to insert into %s", table)
	}

	return id, nil
}

// UpdateByID writes cs to the row of table whose pk equals id and returns the rows affected.
// An empty changeset, or an id no row can hold, is not sent to the store.
func UpdateByID(ctx context.Context, exec boil.ContextExecutor, d *drivers.Dialect, table, pk string, id uint64, cs Changeset) (int64, error) {
	if cs.Empty() || !ValidID(id) {
		return 0, nil
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		quoteIdent(d, table),
		strmangle.SetParamNames(string(d.LQ), string(d.RQ), placeholderStart(d, 1), cs.columns),
		strmangle.WhereClause(string(d.LQ), string(d.RQ), placeholderStart(d, len(cs.columns)+1), []string{pk}),
	)
	args := append(append(make([]any, 0, len(cs.values)+1), cs.values...), id)

	if boil.IsDebug(ctx) {
		writer := boil.DebugWriterFrom(ctx)
		fmt.Fprintln(writer, query)
		fmt.Fprintln(writer, args...)
	}

	result, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrapf(err, "sqlboiler: unable to update %s row", table)
	}

	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrapf(err, "sqlboiler: failed to get rows affected by update for %s", table)
	}

	return rowsAff, nil
}

// DeleteByID removes the row of table whose pk equals id and returns the rows affected.
func DeleteByID(ctx context.Context, exec boil.ContextExecutor, d *drivers.Dialect, table, pk string, id uint64) (int64, error) {
	if !ValidID(id) {
		return 0, nil
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s",
		quoteIdent(d, table),
		strmangle.WhereClause(string(d.LQ), string(d.RQ), placeholderStart(d, 1), []string{pk}),
	)

	if boil.IsDebug(ctx) {
		writer := boil.DebugWriterFrom(ctx)
		fmt.Fprintln(writer, query)
		fmt.Fprintln(writer, id)
	}

	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return 0, errors.Wrapf(err, "sqlboiler: unable to delete from %s", table)
	}

	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrapf(err, "sqlboiler: failed to get rows affected by delete for %s", table)
	}

	return rowsAff, nil
}

// ValidID reports whether id fits the signed BIGINT key columns. Larger values
// cannot be sent through database/sql and cannot name a stored row.
func ValidID(id uint64) bool {
	return id <= math.MaxInt64
}

// placeholderStart returns 0 for dialects using "?" placeholders, which strmangle renders as "?".
func placeholderStart(d *drivers.Dialect, n int) int {
	if d.UseIndexPlaceholders {
		return n
	}
	return 0
}
