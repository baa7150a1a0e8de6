package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"sentiment-service/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ErrItemNotFound is returned when no item exists for the requested id.
var ErrItemNotFound = errors.New("item not found")

type ItemRepository interface {
	Create(name, description string) (*models.Item, error)
	List() ([]models.Item, error)
	GetByID(id int64) (*models.Item, error)
	Ping() error
}

type itemRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewItemRepository(db *sqlx.DB, logger *zap.Logger) ItemRepository {
	return &itemRepository{db: db, logger: logger}
}

func (r *itemRepository) Create(name, description string) (*models.Item, error) {
	var item models.Item
	query := `INSERT INTO items (name, description) VALUES ($1, $2)
	          RETURNING id, name, description, created_at`
	err := r.db.QueryRowx(query, name, description).StructScan(&item)
	if err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}
	return &item, nil
}

func (r *itemRepository) List() ([]models.Item, error) {
	items := []models.Item{}
	query := `SELECT id, name, description, created_at FROM items ORDER BY id`
	err := r.db.Select(&items, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (r *itemRepository) GetByID(id int64) (*models.Item, error) {
	var item models.Item
	query := `SELECT id, name, description, created_at FROM items WHERE id = $1`
	err := r.db.Get(&item, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return &item, nil
}

// Ping issues a trivial liveness query against the store.
func (r *itemRepository) Ping() error {
	var one int
	return r.db.Get(&one, "SELECT 1")
}
