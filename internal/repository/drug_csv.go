// Package repository provides access to drug record data and the generated
// quiz document on disk.
package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/carlyclark26/PharmC-Quiz/internal/domain/entities"
)

var (
	ErrMissingColumn = errors.New("required column not found")
	ErrEmptyValue    = errors.New("empty brand or generic value")
)

// DrugRepository provides access to brand/generic drug pairs loaded from a
// CSV file. The file must have "brand" and "generic" header columns; column
// order does not matter and values are trimmed of surrounding whitespace.
type DrugRepository struct {
	records []entities.DrugRecord
}

// NewDrugRepository loads the CSV at path into memory.
func NewDrugRepository(path string) (*DrugRepository, error) {
	records, err := loadDrugs(path)
	if err != nil {
		return nil, err
	}

	return &DrugRepository{records: records}, nil
}

// GetAll returns every record in file order.
func (r *DrugRepository) GetAll(_ context.Context) ([]entities.DrugRecord, error) {
	return r.records, nil
}

func loadDrugs(path string) ([]entities.DrugRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open drug data: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse drug data: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: brand, generic", ErrMissingColumn)
	}

	brandCol, genericCol := -1, -1
	for i, name := range rows[0] {
		switch strings.TrimSpace(name) {
		case "brand":
			brandCol = i
		case "generic":
			genericCol = i
		}
	}
	if brandCol < 0 {
		return nil, fmt.Errorf("%w: brand", ErrMissingColumn)
	}
	if genericCol < 0 {
		return nil, fmt.Errorf("%w: generic", ErrMissingColumn)
	}

	records := make([]entities.DrugRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		record := entities.DrugRecord{
			Brand:   strings.TrimSpace(row[brandCol]),
			Generic: strings.TrimSpace(row[genericCol]),
		}
		if record.Brand == "" || record.Generic == "" {
			return nil, fmt.Errorf("row %d: %w", i+2, ErrEmptyValue)
		}
		records = append(records, record)
	}

	return records, nil
}
