// Package repositories holds the PostgreSQL-backed data access layer.
package repositories

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reactwise/condrec/internal/domain/reaction"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Reaction Record Repository
// ─────────────────────────────────────────────────────────────────────────────

const reactionColumns = `id, reaction_type, reactants, products,
	catalysts, ligands, solvents, bases,
	temperature_c, time_h, yield_pct, reference`

// ReactionRepository streams and ingests dataset records stored in the
// reactions table.  It satisfies reaction.RecordSource, so the engine and
// the evidence aggregator can run against the database exactly as they run
// against a CSV directory.
type ReactionRepository struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

var _ reaction.RecordSource = (*ReactionRepository)(nil)

// NewReactionRepository wires a repository onto an open pool.
func NewReactionRepository(pool *pgxpool.Pool, log logging.Logger) *ReactionRepository {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &ReactionRepository{pool: pool, logger: log.Named("reaction_repo")}
}

// Stream walks every stored record in insertion order.  fn errors stop the
// scan and propagate.
func (r *ReactionRepository) Stream(ctx context.Context, fn func(reaction.Record) error) error {
	rows, err := r.pool.Query(ctx, `SELECT `+reactionColumns+` FROM reactions ORDER BY seq`)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "query reactions")
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "scan reactions")
	}
	return nil
}

// StreamByType walks only the records whose stored reaction_type label
// matches the given partition tag, pushing the filter into SQL for large
// datasets.  Matching mirrors reaction.Record.MatchesTag containment.
func (r *ReactionRepository) StreamByType(ctx context.Context, tag string, fn func(reaction.Record) error) error {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reactionColumns+` FROM reactions WHERE reaction_type ILIKE '%' || $1 || '%' ORDER BY seq`,
		tag)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "query reactions by type")
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "scan reactions by type")
	}
	return nil
}

// Count returns the number of stored records.
func (r *ReactionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM reactions`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeDatabaseError, "count reactions")
	}
	return n, nil
}

// BulkInsert loads a batch of records with COPY.  Used by the ingest
// command after a CSV scan; duplicate IDs fail the whole batch so partial
// loads cannot slip in unnoticed.
func (r *ReactionRepository) BulkInsert(ctx context.Context, records []reaction.Record) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, recordRow(rec))
	}
	n, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"reactions"},
		[]string{"id", "reaction_type", "reactants", "products",
			"catalysts", "ligands", "solvents", "bases",
			"temperature_c", "time_h", "yield_pct", "reference"},
		pgx.CopyFromRows(rows))
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeDatabaseError, "copy reactions")
	}
	r.logger.Info("bulk insert complete", logging.Int64("rows", n))
	return n, nil
}

// Truncate empties the reactions table before a full re-ingest.
func (r *ReactionRepository) Truncate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `TRUNCATE reactions`); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "truncate reactions")
	}
	return nil
}

// scanRecord maps one result row onto a Record.  Array columns come back as
// text[]; nil arrays become empty slices so downstream code never sees a
// nil role list.
func scanRecord(rows pgx.Rows) (reaction.Record, error) {
	var (
		rec                                   reaction.Record
		catalysts, ligands, solvents, bases   []string
		temperature, timeRaw, yield, referral *string
	)
	err := rows.Scan(&rec.ID, &rec.RawType, &rec.Reactants, &rec.Products,
		&catalysts, &ligands, &solvents, &bases,
		&temperature, &timeRaw, &yield, &referral)
	if err != nil {
		return reaction.Record{}, errors.Wrap(err, errors.ErrCodeDatabaseError, "scan reaction row")
	}
	rec.Catalysts = nonNil(catalysts)
	rec.Ligands = nonNil(ligands)
	rec.Solvents = nonNil(solvents)
	rec.Bases = nonNil(bases)
	rec.TemperatureRaw = deref(temperature)
	rec.TimeRaw = deref(timeRaw)
	rec.YieldRaw = deref(yield)
	rec.Reference = deref(referral)
	return rec, nil
}

// recordRow renders a Record as a COPY row, trimming label whitespace the
// same way the CSV source does.
func recordRow(rec reaction.Record) []any {
	return []any{
		strings.TrimSpace(rec.ID),
		strings.TrimSpace(rec.RawType),
		strings.TrimSpace(rec.Reactants),
		strings.TrimSpace(rec.Products),
		nonNil(rec.Catalysts),
		nonNil(rec.Ligands),
		nonNil(rec.Solvents),
		nonNil(rec.Bases),
		nullable(rec.TemperatureRaw),
		nullable(rec.TimeRaw),
		nullable(rec.YieldRaw),
		nullable(rec.Reference),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}
