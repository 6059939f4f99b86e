package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carewise/carematch/internal/homes"
	"github.com/carewise/carematch/internal/report"
)

const upsertHomeSQL = `
	INSERT INTO homes (
		id, name, local_authority, contact_phone, distance,
		weekly_cost, match_score, record, imported_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		name = excluded.name,
		local_authority = excluded.local_authority,
		contact_phone = excluded.contact_phone,
		distance = excluded.distance,
		weekly_cost = excluded.weekly_cost,
		match_score = excluded.match_score,
		record = excluded.record,
		updated_at = excluded.updated_at
`

// execer lets upserts run on the pool or inside a transaction
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func upsertHome(ctx context.Context, e execer, h *homes.Record) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}

	payload, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("failed to encode home record: %w", err)
	}

	now := time.Now()
	_, err = e.ExecContext(ctx, upsertHomeSQL,
		h.ID, h.Name, h.LocalAuthority, h.ContactPhone, h.Distance,
		h.WeeklyCost, h.MatchScore, string(payload), now, now,
	)
	return err
}

// UpsertHome inserts or replaces a care-home record
func (db *DB) UpsertHome(ctx context.Context, h *homes.Record) error {
	return upsertHome(ctx, db, h)
}

// ImportHomes upserts a batch of records in one transaction and
// returns how many were written
func (db *DB) ImportHomes(ctx context.Context, records []homes.Record) (int, error) {
	count := 0
	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		for i := range records {
			if err := upsertHome(ctx, tx, &records[i]); err != nil {
				return fmt.Errorf("failed to import %q: %w", records[i].Name, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetHome retrieves one record by id; nil when not found
func (db *DB) GetHome(ctx context.Context, id string) (*homes.Record, error) {
	var payload string
	err := db.QueryRowContext(ctx, `
		SELECT record FROM homes WHERE id = ?
	`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return decodeHome(payload)
}

// ListHomes returns all stored records, best provider score first
func (db *DB) ListHomes(ctx context.Context, limit int) ([]homes.Record, error) {
	query := `SELECT record FROM homes ORDER BY match_score DESC, name`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []homes.Record
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		h, err := decodeHome(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, *h)
	}
	return out, rows.Err()
}

// ListHomeRows returns the listing columns without decoding records
func (db *DB) ListHomeRows(ctx context.Context, limit int) ([]HomeRow, error) {
	query := `
		SELECT id, name, local_authority, contact_phone, distance,
		       weekly_cost, match_score, imported_at, updated_at
		FROM homes ORDER BY match_score DESC, name
	`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HomeRow
	for rows.Next() {
		var r HomeRow
		var authority, phone, distance sql.NullString
		var cost sql.NullFloat64
		if err := rows.Scan(
			&r.ID, &r.Name, &authority, &phone, &distance,
			&cost, &r.MatchScore, &r.ImportedAt, &r.UpdatedAt,
		); err != nil {
			return nil, err
		}
		r.LocalAuthority = authority.String
		r.ContactPhone = phone.String
		r.Distance = distance.String
		r.WeeklyCost = cost.Float64
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountHomes returns the number of stored records
func (db *DB) CountHomes(ctx context.Context) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM homes`).Scan(&n)
	return n, err
}

// SaveReport persists a generated report
func (db *DB) SaveReport(ctx context.Context, r *report.Report) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	topHome := ""
	topScore := 0
	if len(r.Rankings) > 0 {
		topHome = r.Rankings[0].Name
		topScore = r.Rankings[0].Score
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO reports (
			id, client_name, generated_at, home_count,
			top_home, top_score, payload, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.ID, r.ClientName, r.GeneratedAt, len(r.Rankings),
		topHome, topScore, string(payload), time.Now(),
	)
	return err
}

// GetReport retrieves a saved report by id; nil when not found.
// A unique id prefix is accepted, matching how ids are shown in lists.
func (db *DB) GetReport(ctx context.Context, id string) (*report.Report, error) {
	var payload string
	err := db.QueryRowContext(ctx, `
		SELECT payload FROM reports
		WHERE id = ? OR id LIKE ? || '%'
		ORDER BY generated_at DESC LIMIT 1
	`, id, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var r report.Report
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &r, nil
}

// LatestReport returns the most recently generated report; nil when
// none have been saved
func (db *DB) LatestReport(ctx context.Context) (*report.Report, error) {
	var id string
	err := db.QueryRowContext(ctx, `
		SELECT id FROM reports ORDER BY generated_at DESC LIMIT 1
	`).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return db.GetReport(ctx, id)
}

// ListReports returns saved report summaries, newest first
func (db *DB) ListReports(ctx context.Context) ([]ReportSummary, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, client_name, generated_at, home_count, top_home, top_score, created_at
		FROM reports ORDER BY generated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ReportSummary
	for rows.Next() {
		var s ReportSummary
		var client, topHome sql.NullString
		var topScore sql.NullInt64
		if err := rows.Scan(
			&s.ID, &client, &s.GeneratedAt, &s.HomeCount,
			&topHome, &topScore, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		s.ClientName = client.String
		s.TopHome = topHome.String
		s.TopScore = int(topScore.Int64)
		out = append(out, s)
	}
	return out, rows.Err()
}

func decodeHome(payload string) (*homes.Record, error) {
	var h homes.Record
	if err := json.Unmarshal([]byte(payload), &h); err != nil {
		return nil, fmt.Errorf("failed to decode home record: %w", err)
	}
	return &h, nil
}
