package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carlyclark26/PharmC-Quiz/internal/domain/entities"
)

var ErrEmptyValue = errors.New("empty brand or generic value")

// DrugRepository reads brand/generic drug pairs from a Postgres table.
type DrugRepository struct {
	db    *pgxpool.Pool
	table string
}

// NewDrugRepository creates a new DrugRepository reading from the given table.
func NewDrugRepository(db *pgxpool.Pool, table string) *DrugRepository {
	return &DrugRepository{db: db, table: table}
}

// GetAll returns every record ordered by id, trimmed and validated the same
// way as the CSV source.
func (r *DrugRepository) GetAll(ctx context.Context) ([]entities.DrugRecord, error) {
	query := fmt.Sprintf(
		`SELECT brand, generic FROM %s ORDER BY id`,
		pgx.Identifier{r.table}.Sanitize(),
	)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query drug records: %w", err)
	}
	defer rows.Close()

	var records []entities.DrugRecord
	for rows.Next() {
		var record entities.DrugRecord
		if err := rows.Scan(&record.Brand, &record.Generic); err != nil {
			return nil, fmt.Errorf("scan drug record: %w", err)
		}

		record.Brand = strings.TrimSpace(record.Brand)
		record.Generic = strings.TrimSpace(record.Generic)
		if record.Brand == "" || record.Generic == "" {
			return nil, fmt.Errorf("record %d: %w", len(records)+1, ErrEmptyValue)
		}

		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read drug records: %w", err)
	}

	return records, nil
}
