package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

const (
	decisionsTable = "adset_decisions"
	// limita o número de parâmetros por INSERT
	decisionInsertChunk = 500
)

type DecisionRepository interface {
	SaveBatch(runID string, cycle int, decisions []domain.Decision) error
	ListByRun(runID string) ([]*domain.DecisionEntry, error)
}

type decisionRepository struct {
	conn *postgres.Connection
}

func NewDecisionRepository(conn *postgres.Connection) DecisionRepository {
	return &decisionRepository{
		conn: conn,
	}
}

// SaveBatch grava as decisões de uma execução numa única transação
func (r *decisionRepository) SaveBatch(runID string, cycle int, decisions []domain.Decision) error {
	if len(decisions) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for start := 0; start < len(decisions); start += decisionInsertChunk {
			end := min(start+decisionInsertChunk, len(decisions))
			if err := insertDecisions(tx, runID, cycle, decisions[start:end]); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertDecisions(q postgres.Queryer, runID string, cycle int, decisions []domain.Decision) error {
	builder := squirrel.
		Insert(decisionsTable).
		Columns(
			"run_id", "cycle", "adset_id", "source_key", "sub_source_key", "day",
			"action", "reason", "suggestion", "budget_change_pct", "priority",
			"cpc_rate", "cost", "roi", "cluster",
		)

	for _, d := range decisions {
		cluster := 0
		if d.Cluster != nil {
			cluster = *d.Cluster
		}
		builder = builder.Values(
			runID, cycle, d.AdsetID, d.SourceKey, d.SubSourceKey, d.Day,
			string(d.Action), d.Reason, d.Suggestion, d.BudgetChangePct, d.Priority,
			string(d.CPCRate), d.Cost, d.ROI, cluster,
		)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (run_id, adset_id, day) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar decisões: %w", err)
	}

	return nil
}

func (r *decisionRepository) ListByRun(runID string) ([]*domain.DecisionEntry, error) {
	query, args, err := squirrel.
		Select(
			"id", "run_id", "cycle", "adset_id", "source_key", "sub_source_key", "day",
			"action", "reason", "suggestion", "budget_change_pct", "priority",
			"cpc_rate", "cost", "roi", "cluster", "created_at",
		).
		From(decisionsTable).
		Where(squirrel.Eq{"run_id": runID}).
		OrderBy("priority ASC", "roi DESC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.DecisionEntry, 0)
	for rows.Next() {
		var e domain.DecisionEntry
		if err := rows.Scan(
			&e.ID, &e.RunID, &e.Cycle, &e.AdsetID, &e.SourceKey, &e.SubSourceKey, &e.Day,
			&e.Action, &e.Reason, &e.Suggestion, &e.BudgetChangePct, &e.Priority,
			&e.CPCRate, &e.Cost, &e.ROI, &e.Cluster, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear decisão: %w", err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
