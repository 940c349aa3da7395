package db

import (
	"fmt"

	"github.com/oscillant-data/vibration.report/internal/vibration"
)

// InsertRows writes a batch of sample rows in a single transaction:
// either every row lands or none do. It satisfies vibration.RowSink.
func (db *DB) InsertRows(rows []vibration.Row) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin samples tx: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO samples (
			sample, x, y, z, h_vib, v_vib, a_vib,
			h_vel, v_vel, a_vel, h_disp, v_disp, a_disp, sensor_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare samples insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(
			r.Sequence, r.X, r.Y, r.Z, r.HVib, r.VVib, r.AVib,
			r.HVel, r.VVel, r.AVel, r.HDisp, r.VDisp, r.ADisp, r.SensorID,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert sample %d: %w", r.Sequence, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit samples tx: %w", err)
	}
	return nil
}

// MaxSequence returns the highest persisted sequence number across all
// sensors, or zero when the table is empty. The pipeline resumes from
// one past this value so sequence numbers survive restarts.
func (db *DB) MaxSequence() (int64, error) {
	var max int64
	err := db.QueryRow(`SELECT COALESCE(MAX(sample), 0) FROM samples`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("query max sample: %w", err)
	}
	return max, nil
}

// RecentRows returns up to limit rows for one sensor, newest sequence
// first. The dashboard polls the table directly; this query backs
// tests and ad hoc inspection.
func (db *DB) RecentRows(sensorID, limit int) ([]vibration.Row, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := db.Query(`
		SELECT sample, x, y, z, h_vib, v_vib, a_vib,
			h_vel, v_vel, a_vel, h_disp, v_disp, a_disp, sensor_id
		FROM samples
		WHERE sensor_id = ?
		ORDER BY sample DESC
		LIMIT ?`, sensorID, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent samples: %w", err)
	}
	defer rows.Close()

	var out []vibration.Row
	for rows.Next() {
		var r vibration.Row
		if err := rows.Scan(
			&r.Sequence, &r.X, &r.Y, &r.Z, &r.HVib, &r.VVib, &r.AVib,
			&r.HVel, &r.VVel, &r.AVel, &r.HDisp, &r.VDisp, &r.ADisp, &r.SensorID,
		); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
