package store

import (
	"context"
	"fmt"

	"aitrends-dashboard/internal/domain"
)

func (d *DB) Migrate(ctx context.Context) error {
	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRowContext(ctx, `PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS jobs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  industry TEXT NOT NULL,
  job_title TEXT NOT NULL,
  impact_level TEXT NOT NULL,
  openings_2024 INTEGER NOT NULL,
  projected_2030 INTEGER NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
CREATE INDEX IF NOT EXISTS idx_jobs_industry_title
ON jobs(industry, job_title);
`); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

// InsertJobs writes records in one transaction.
func (d *DB) InsertJobs(ctx context.Context, records []domain.JobRecord) error {
	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO jobs(industry, job_title, impact_level, openings_2024, projected_2030)
VALUES(?,?,?,?,?);`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Industry, r.JobTitle, string(r.ImpactLevel), r.Openings2024, r.Projected2030); err != nil {
			return fmt.Errorf("insert job %d: %w", i, err)
		}
	}
	return tx.Commit()
}

func (d *DB) CountJobs(ctx context.Context) (int, error) {
	var n int
	err := d.Pool.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs;`).Scan(&n)
	return n, err
}

// JobTitles returns the distinct job titles of industry in byte order,
// the same order sort.Strings gives.
func (d *DB) JobTitles(ctx context.Context, industry string) ([]string, error) {
	rows, err := d.Pool.QueryContext(ctx, `
SELECT DISTINCT job_title
FROM jobs
WHERE industry = ?
ORDER BY job_title COLLATE BINARY;`, industry)
	if err != nil {
		return nil, fmt.Errorf("query job titles: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		out = append(out, title)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// OpenIndex loads records into a fresh in-memory database.
func OpenIndex(ctx context.Context, records []domain.JobRecord) (*DB, error) {
	db, err := Open(MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("open title index: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate title index: %w", err)
	}
	if err := db.InsertJobs(ctx, records); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
