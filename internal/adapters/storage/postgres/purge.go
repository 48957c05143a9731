package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// purgeSteps van de hijos a padres. Un padre con hijos todavía presentes (activos o
// eliminados más recientes) se conserva: el ON DELETE CASCADE se los llevaría.
var purgeSteps = []struct {
	table string
	guard string
}{
	{table: "medicament_prescriptions"},
	{table: "treatments", guard: "NOT EXISTS (SELECT 1 FROM medicament_prescriptions x WHERE x.treatment_id = t.id)"},
	{table: "medicaments", guard: "NOT EXISTS (SELECT 1 FROM medicament_prescriptions x WHERE x.medicament_id = t.id)"},
	{table: "patients", guard: "NOT EXISTS (SELECT 1 FROM treatments x WHERE x.patient_id = t.id)"},
	{table: "customers", guard: "NOT EXISTS (SELECT 1 FROM patients x WHERE x.customer_id = t.id)"},
}

// PurgeResult cuenta filas borradas físicamente por tabla.
type PurgeResult map[string]int64

func (r PurgeResult) Total() int64 {
	var n int64
	for _, v := range r {
		n += v
	}
	return n
}

// Purger borra físicamente lo que lleva eliminado más tiempo que la retención.
// No forma parte del flujo normal: lo dispara el comando purge.
type Purger struct {
	db *sql.DB
}

func NewPurger(db *sql.DB) *Purger {
	return &Purger{db: db}
}

// Purge corre todo en una transacción; si un paso falla no se borra nada.
func (p *Purger) Purge(ctx context.Context, cutoff time.Time) (PurgeResult, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	out := PurgeResult{}
	for _, step := range purgeSteps {
		q := fmt.Sprintf(`DELETE FROM %s t WHERE t.is_deleted = TRUE AND t.deleted_at < $1`, step.table)
		if step.guard != "" {
			q += " AND " + step.guard
		}
		res, err := tx.ExecContext(ctx, q, cutoff)
		if err != nil {
			return nil, fmt.Errorf("purge %s: %w", step.table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("purge %s: %w", step.table, err)
		}
		out[step.table] = n
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit purge: %w", err)
	}
	return out, nil
}
