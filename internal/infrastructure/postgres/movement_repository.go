package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/mdmgroup/inventory-api/internal/domain"
	"github.com/mdmgroup/inventory-api/internal/domain/entity"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// El ledger es append-only: este adaptador no emite UPDATE ni DELETE sobre movements.
type MovementRepo struct {
	db Querier
}

// NewMovementRepository construye el adaptador de persistencia del ledger.
func NewMovementRepository(db Querier) *MovementRepo {
	return &MovementRepo{db: db}
}

const movementColumns = `id, item_id, warehouse_id, bin_id, project_id, qty, unit_cost, mtype, ref, moved_at, created_at`

// Create agrega una entrada al ledger.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		m.ID, m.ItemID, m.WarehouseID, m.BinID, m.ProjectID,
		m.Qty, m.UnitCost, m.Type, m.Ref, m.MovedAt, m.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada del ledger por ID; nil si no existe.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.ItemID, &m.WarehouseID, &m.BinID, &m.ProjectID,
		&m.Qty, &m.UnitCost, &m.Type, &m.Ref, &m.MovedAt, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement by id: %w", err)
	}
	return &m, nil
}

// List lista el ledger con filtros opcionales, más reciente primero.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, val any) {
		args = append(args, val)
		where = append(where, cond+"$"+strconv.Itoa(len(args)))
	}
	if f.ItemID != "" {
		add("item_id = ", f.ItemID)
	}
	if f.WarehouseID != "" {
		add("warehouse_id = ", f.WarehouseID)
	}
	if f.ProjectID != "" {
		add("project_id = ", f.ProjectID)
	}
	if f.From != nil {
		add("moved_at >= ", *f.From)
	}
	if f.To != nil {
		add("moved_at <= ", *f.To)
	}

	query := `SELECT ` + movementColumns + ` FROM movements`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	query += " ORDER BY moved_at DESC, created_at DESC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.ItemID, &m.WarehouseID, &m.BinID, &m.ProjectID,
			&m.Qty, &m.UnitCost, &m.Type, &m.Ref, &m.MovedAt, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
