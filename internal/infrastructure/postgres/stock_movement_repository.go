package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/control-inventario/internal/domain/entity"
	"github.com/jhoicas/control-inventario/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = "id, product_id, user_id, type, quantity, reason, note, date"

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// Los movimientos son inmutables: solo INSERT y SELECT.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, product_id, user_id, type, quantity, reason, note, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.UserID, movement.Type,
		movement.Quantity, nullable(movement.Reason), nullable(movement.Note), movement.Date,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil si no existe.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista movimientos con filtros y paginación, más reciente primero.
func (r *StockMovementRepo) List(f repository.MovementFilter) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE 1=1`
	var args []any
	pos := 1
	if f.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, f.ProductID)
		pos++
	}
	if f.UserID != "" {
		query += fmt.Sprintf(" AND user_id = $%d", pos)
		args = append(args, f.UserID)
		pos++
	}
	if f.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, f.Type)
		pos++
	}
	if f.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *f.From)
		pos++
	}
	if f.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *f.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	return r.queryMovements(query, args...)
}

// ListByProduct historial completo de un producto, más reciente primero.
func (r *StockMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE product_id = $1 ORDER BY date DESC`
	return r.queryMovements(query, productID)
}

// ListByUser historial completo de un usuario, más reciente primero.
func (r *StockMovementRepo) ListByUser(userID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE user_id = $1 ORDER BY date DESC`
	return r.queryMovements(query, userID)
}

// CountByProduct total de movimientos de un producto (decide soft vs hard delete).
func (r *StockMovementRepo) CountByProduct(productID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM stock_movements WHERE product_id = $1`, productID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movements by product: %w", err)
	}
	return count, nil
}

// CountByUser total de movimientos registrados por un usuario.
func (r *StockMovementRepo) CountByUser(userID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM stock_movements WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movements by user: %w", err)
	}
	return count, nil
}

// RecentByProducts devuelve hasta perProduct movimientos recientes por producto
// en una sola consulta con window function (reemplaza el include del ORM).
func (r *StockMovementRepo) RecentByProducts(productIDs []string, perProduct int) (map[string][]*entity.StockMovement, error) {
	result := make(map[string][]*entity.StockMovement, len(productIDs))
	if len(productIDs) == 0 || perProduct <= 0 {
		return result, nil
	}
	query := `
		SELECT id, product_id, user_id, type, quantity, reason, note, date FROM (
			SELECT ` + movementColumns + `,
			       row_number() OVER (PARTITION BY product_id ORDER BY date DESC) AS rn
			FROM stock_movements
			WHERE product_id = ANY($1)
		) ranked
		WHERE rn <= $2
		ORDER BY product_id, date DESC`
	list, err := r.queryMovements(query, productIDs, perProduct)
	if err != nil {
		return nil, err
	}
	for _, m := range list {
		result[m.ProductID] = append(result[m.ProductID], m)
	}
	return result, nil
}

func (r *StockMovementRepo) queryMovements(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var reason, note *string
	err := row.Scan(&m.ID, &m.ProductID, &m.UserID, &m.Type, &m.Quantity, &reason, &note, &m.Date)
	if err != nil {
		return nil, err
	}
	if reason != nil {
		m.Reason = *reason
	}
	if note != nil {
		m.Note = *note
	}
	return &m, nil
}
