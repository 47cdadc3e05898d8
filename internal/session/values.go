package session

import (
	"context"
	"database/sql"
)

// StoredValue is one persisted widget value row.
type StoredValue struct {
	WidgetID   string
	Value      string
	FromUI     bool
	FragmentID string
}

// ValueRepo persists widget values.
type ValueRepo struct {
	db *sql.DB
}

func NewValueRepo(db *sql.DB) *ValueRepo {
	return &ValueRepo{db: db}
}

func (r *ValueRepo) Upsert(ctx context.Context, v StoredValue) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO widget_values(widget_id, value, from_ui, fragment_id, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(widget_id) DO UPDATE SET
	 value=excluded.value,
	 from_ui=excluded.from_ui,
	 fragment_id=excluded.fragment_id,
	 updated_at=excluded.updated_at;
	`, v.WidgetID, v.Value, v.FromUI, v.FragmentID, Now())
	return err
}

func (r *ValueRepo) List(ctx context.Context) ([]StoredValue, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT widget_id, value, from_ui, fragment_id FROM widget_values ORDER BY widget_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []StoredValue
	for rows.Next() {
		var v StoredValue
		if err := rows.Scan(&v.WidgetID, &v.Value, &v.FromUI, &v.FragmentID); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Seeds returns persisted values keyed by widget id, the shape the session
// takes at startup.
func (r *ValueRepo) Seeds(ctx context.Context) (map[string]string, error) {
	values, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(values))
	for _, v := range values {
		out[v.WidgetID] = v.Value
	}
	return out, nil
}
