package sqlite

import (
	"database/sql"
	"time"

	"github.com/mugshot-app/mugshot/internal/domain"
)

// ─── Visits ─────────────────────────────────────────────────────────────────

// InsertVisit stores a new visit.
func (d *DB) InsertVisit(v domain.Visit) error {
	_, err := d.db.Exec(
		`INSERT INTO visits (id, cafe_id, cafe_name, created_at, drink_type, rating, caption, notes, photo_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.CafeID, v.CafeName, v.CreatedAt.Unix(), string(v.Drink),
		v.Rating, v.Caption, v.Notes, v.PhotoURL,
	)
	return err
}

// GetVisit retrieves a visit by ID.
func (d *DB) GetVisit(id string) (*domain.Visit, error) {
	row := d.db.QueryRow(
		`SELECT id, cafe_id, cafe_name, created_at, drink_type, rating, caption, notes, photo_url
		 FROM visits WHERE id = ?`, id,
	)
	v, err := scanVisit(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrVisitNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ListVisits returns all visits, newest first.
func (d *DB) ListVisits() ([]domain.Visit, error) {
	rows, err := d.db.Query(
		`SELECT id, cafe_id, cafe_name, created_at, drink_type, rating, caption, notes, photo_url
		 FROM visits ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []domain.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		visits = append(visits, *v)
	}
	return visits, rows.Err()
}

// DeleteVisit removes a visit. Returns domain.ErrVisitNotFound if no row
// matched.
func (d *DB) DeleteVisit(id string) error {
	result, err := d.db.Exec(`DELETE FROM visits WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrVisitNotFound
	}
	return nil
}

// VisitCount returns the total number of stored visits.
func (d *DB) VisitCount() (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM visits`).Scan(&count)
	return count, err
}

// scanner abstracts sql.Row and sql.Rows for scanVisit.
type scanner interface {
	Scan(dest ...any) error
}

func scanVisit(s scanner) (*domain.Visit, error) {
	var v domain.Visit
	var createdAt int64
	var drink string
	if err := s.Scan(&v.ID, &v.CafeID, &v.CafeName, &createdAt, &drink,
		&v.Rating, &v.Caption, &v.Notes, &v.PhotoURL); err != nil {
		return nil, err
	}
	v.CreatedAt = time.Unix(createdAt, 0)
	v.Drink = domain.DrinkType(drink)
	return &v, nil
}
