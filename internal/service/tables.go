package service

import (
	"strings"

	"github.com/google/uuid"

	"tableside/internal/domain"
)

// TableService manages the dining tables and their ordering QR codes.
// Tables have a lifecycle independent from orders: deleting a table leaves
// its historical orders alone.
type TableService struct {
	tables TableCollection
	qr     QRGenerator
}

func NewTableService(tables TableCollection, qr QRGenerator) *TableService {
	return &TableService{tables: tables, qr: qr}
}

func (s *TableService) List() []domain.RestaurantTable {
	return s.tables.Items()
}

// Add registers a new table. Names are trimmed and must be unique among
// tables, exact match.
func (s *TableService) Add(name string) (domain.RestaurantTable, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return domain.RestaurantTable{}, ErrTableNameEmpty
	}

	var table domain.RestaurantTable
	var addErr error
	s.tables.Mutate(func(tables []domain.RestaurantTable) []domain.RestaurantTable {
		for _, t := range tables {
			if t.Name == trimmed {
				addErr = ErrTableNameTaken
				return tables
			}
		}
		table = domain.RestaurantTable{ID: uuid.NewString(), Name: trimmed}
		return append(tables, table)
	})
	if addErr != nil {
		return domain.RestaurantTable{}, addErr
	}
	return table, nil
}

// Delete is a hard removal, not a status change.
func (s *TableService) Delete(tableID string) {
	s.tables.Mutate(func(tables []domain.RestaurantTable) []domain.RestaurantTable {
		kept := tables[:0]
		for _, t := range tables {
			if t.ID != tableID {
				kept = append(kept, t)
			}
		}
		return kept
	})
}

// QRCode renders the PNG diners scan to start ordering at the table.
func (s *TableService) QRCode(tableID string) ([]byte, error) {
	for _, t := range s.tables.Items() {
		if t.ID == tableID {
			return s.qr.Generate(t.Name)
		}
	}
	return nil, ErrTableNotFound
}

var _ TableServiceInterface = (*TableService)(nil)
