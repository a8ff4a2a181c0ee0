package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
)

const defaultListLimit = 50

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository is the reconciliation ledger.
type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) SaveReconciliation(ctx context.Context, rec entity.Reconciliation) error {
	const q = `
	INSERT INTO reconciliations (
		id,
		run_id,
		record_hash,
		tax_id,
		contract_model,
		outcome,
		company_id,
		card_id,
		error,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		rec.ID,
		rec.RunID,
		rec.RecordHash,
		rec.TaxID,
		rec.ContractModel,
		rec.Outcome,
		zeronull.Text(rec.CompanyID),
		zeronull.Text(rec.CardID),
		zeronull.Text(rec.Error),
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reconciliation: %w", err)
	}

	return nil
}

// ProcessedHashes returns hashes of records that reached a terminal outcome.
func (r *Repository) ProcessedHashes(ctx context.Context) (map[string]struct{}, error) {
	const q = `SELECT DISTINCT record_hash FROM reconciliations WHERE outcome <> $1`

	rows, err := r.db.Query(ctx, q, entity.OutcomeFailed)
	if err != nil {
		return nil, err
	}

	hashes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect hashes: %w", err)
	}

	processed := make(map[string]struct{}, len(hashes))
	for _, h := range hashes {
		processed[h] = struct{}{}
	}

	return processed, nil
}

// AwaitsCard reports whether an earlier run created or touched a company for the record
// but failed before any card was created for it.
func (r *Repository) AwaitsCard(ctx context.Context, hash string) (bool, error) {
	const q = `
	SELECT
		EXISTS (
			SELECT 1 FROM reconciliations
			WHERE record_hash = $1 AND outcome = $2 AND company_id IS NOT NULL
		)
		AND NOT EXISTS (
			SELECT 1 FROM reconciliations
			WHERE record_hash = $1 AND card_id IS NOT NULL
		)
	`

	var awaits bool

	err := r.db.QueryRow(ctx, q, hash, entity.OutcomeFailed).Scan(&awaits)
	if err != nil {
		return false, fmt.Errorf("query awaiting card: %w", err)
	}

	return awaits, nil
}

func (r *Repository) Reconciliations(ctx context.Context, filter entity.ReconciliationFilter) ([]entity.Reconciliation, error) {
	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	b := psql.Select(
		"id",
		"run_id",
		"record_hash",
		"tax_id",
		"contract_model",
		"outcome",
		"company_id",
		"card_id",
		"error",
		"created_at",
	).
		From("reconciliations").
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(filter.Offset)

	if filter.TaxID != "" {
		b = b.Where(sq.Eq{"tax_id": filter.TaxID})
	}

	if filter.Outcome != "" {
		b = b.Where(sq.Eq{"outcome": filter.Outcome})
	}

	if !filter.RunID.IsNil() {
		b = b.Where(sq.Eq{"run_id": filter.RunID})
	}

	q, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var out []entity.Reconciliation

	for rows.Next() {
		rec, err := scanReconciliation(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func scanReconciliation(row pgx.Row) (entity.Reconciliation, error) {
	var (
		rec                       entity.Reconciliation
		companyID, cardID, errMsg zeronull.Text
	)

	err := row.Scan(
		&rec.ID,
		&rec.RunID,
		&rec.RecordHash,
		&rec.TaxID,
		&rec.ContractModel,
		&rec.Outcome,
		&companyID,
		&cardID,
		&errMsg,
		&rec.CreatedAt,
	)
	if err != nil {
		return entity.Reconciliation{}, fmt.Errorf("scan reconciliation: %w", err)
	}

	rec.CompanyID = string(companyID)
	rec.CardID = string(cardID)
	rec.Error = string(errMsg)

	return rec, nil
}
