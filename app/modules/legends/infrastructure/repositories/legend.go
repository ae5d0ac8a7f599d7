package legendsdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Legend is a program alumnus or notable figure.
type Legend struct {
	bun.BaseModel `bun:"table:legends,alias:l"`

	ID          int64     `bun:"id,pk,autoincrement"`
	UUID        uuid.UUID `bun:"uuid,type:uuid,notnull"`
	Name        string    `bun:"name,notnull"`
	Teams       string    `bun:"teams"`
	Image       string    `bun:"image"`
	Description string    `bun:"description"`
}

// Repository defines the persistence contract for legends.
type Repository interface {
	List(ctx context.Context, db bun.IDB, offset, limit int) ([]*Legend, error)
	Count(ctx context.Context, db bun.IDB) (int, error)
}

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new legends repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// List retrieves a window of legends by name.
func (r *Impl) List(ctx context.Context, db bun.IDB, offset, limit int) ([]*Legend, error) {
	db = r.resolveDB(db)
	var legends []*Legend
	err := db.NewSelect().
		Model(&legends).
		Order("name").
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list legends: %w", err)
	}
	return legends, nil
}

// Count returns the total number of legends.
func (r *Impl) Count(ctx context.Context, db bun.IDB) (int, error) {
	db = r.resolveDB(db)
	n, err := db.NewSelect().
		Model((*Legend)(nil)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count legends: %w", err)
	}
	return n, nil
}
