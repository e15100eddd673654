package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

const (
	adsetStatusTable = "adset_status"
)

var ErrAdsetNotFound = errors.New("adset not found")

type AdsetStatusRepository interface {
	ListAll() ([]*domain.AdsetStatus, error)
	GetStatuses(adsetIDs []string) (map[string]*domain.AdsetStatus, error)
	EnsureActive(adsetIDs []string) (int64, error)
	SetActive(adsetID string, active bool) error
}

type adsetStatusRepository struct {
	conn *postgres.Connection
}

func NewAdsetStatusRepository(conn *postgres.Connection) AdsetStatusRepository {
	return &adsetStatusRepository{
		conn: conn,
	}
}

func (r *adsetStatusRepository) ListAll() ([]*domain.AdsetStatus, error) {
	query, args, err := squirrel.
		Select("adset_id", "is_active", "created_at", "updated_at").
		From(adsetStatusTable).
		OrderBy("adset_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryStatuses(query, args...)
}

func (r *adsetStatusRepository) GetStatuses(adsetIDs []string) (map[string]*domain.AdsetStatus, error) {
	statuses := make(map[string]*domain.AdsetStatus, len(adsetIDs))
	if len(adsetIDs) == 0 {
		return statuses, nil
	}

	query, args, err := squirrel.
		Select("adset_id", "is_active", "created_at", "updated_at").
		From(adsetStatusTable).
		Where(squirrel.Eq{"adset_id": adsetIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	items, err := r.queryStatuses(query, args...)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		statuses[item.AdsetID] = item
	}

	return statuses, nil
}

// EnsureActive registra como ativos os adsets ainda desconhecidos; os existentes não mudam
func (r *adsetStatusRepository) EnsureActive(adsetIDs []string) (int64, error) {
	if len(adsetIDs) == 0 {
		return 0, nil
	}

	builder := squirrel.
		Insert(adsetStatusTable).
		Columns("adset_id", "is_active")

	for _, id := range adsetIDs {
		builder = builder.Values(id, true)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (adset_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao registrar adsets: %w", err)
	}

	return result.RowsAffected()
}

func (r *adsetStatusRepository) SetActive(adsetID string, active bool) error {
	query, args, err := squirrel.
		Update(adsetStatusTable).
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"adset_id": adsetID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do adset: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAdsetNotFound
	}

	return nil
}

func (r *adsetStatusRepository) queryStatuses(query string, args ...any) ([]*domain.AdsetStatus, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	statuses := make([]*domain.AdsetStatus, 0)
	for rows.Next() {
		var status domain.AdsetStatus
		if err := rows.Scan(&status.AdsetID, &status.IsActive, &status.CreatedAt, &status.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear status do adset: %w", err)
		}
		statuses = append(statuses, &status)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return statuses, nil
}
