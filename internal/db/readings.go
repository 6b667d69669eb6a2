package db

import (
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/astroscan/astroscan/internal/errors"
)

// Reading is a completed reading as stored in the archive. Cards and
// responses are kept as JSON blobs; the insight is markdown.
type Reading struct {
	ID            string  `json:"id"`
	CreatedAt     int64   `json:"created_at"`
	BirthDate     string  `json:"birth_date"`
	BirthTime     string  `json:"birth_time"`
	BirthLocation string  `json:"birth_location"`
	SunSign       string  `json:"sun_sign"`
	MoonSign      string  `json:"moon_sign"`
	RisingSign    string  `json:"rising_sign"`
	CardsJSON     string  `json:"cards_json"`
	ResponsesJSON string  `json:"responses_json"`
	Insight       string  `json:"insight"`
	Synchronicity float64 `json:"synchronicity"`
}

const readingColumns = `id, created_at, birth_date, birth_time, birth_location,
	sun_sign, moon_sign, rising_sign, cards_json, responses_json, insight, synchronicity`

// InsertReading stores a completed reading.
func InsertReading(database *sql.DB, r *Reading) error {
	_, err := database.Exec(`
		INSERT INTO readings (`+readingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt, r.BirthDate, r.BirthTime, r.BirthLocation,
		r.SunSign, r.MoonSign, r.RisingSign, r.CardsJSON, r.ResponsesJSON,
		r.Insight, r.Synchronicity)
	if err != nil {
		return fmt.Errorf("failed to insert reading: %w", err)
	}
	return nil
}

// GetReading fetches a reading by ID.
func GetReading(database *sql.DB, id string) (*Reading, error) {
	row := database.QueryRow(`SELECT `+readingColumns+` FROM readings WHERE id = ?`, id)
	r, err := scanReading(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFound(fmt.Sprintf("reading %s not found", id))
		}
		return nil, fmt.Errorf("failed to get reading: %w", err)
	}
	return r, nil
}

// ListReadings returns readings newest first, up to limit (0 means no limit).
func ListReadings(database *sql.DB, limit int) ([]*Reading, error) {
	query := `SELECT ` + readingColumns + ` FROM readings ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := database.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}
	defer rows.Close()

	var readings []*Reading
	for rows.Next() {
		r, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reading: %w", err)
		}
		readings = append(readings, r)
	}
	return readings, rows.Err()
}

// DeleteReading removes a reading by ID.
func DeleteReading(database *sql.DB, id string) error {
	res, err := database.Exec(`DELETE FROM readings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reading: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return errors.NewNotFound(fmt.Sprintf("reading %s not found", id))
	}
	return nil
}

// PurgeReadings removes every reading and reports how many were deleted.
func PurgeReadings(database *sql.DB) (int64, error) {
	res, err := database.Exec(`DELETE FROM readings`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge readings: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged readings: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReading(row rowScanner) (*Reading, error) {
	var r Reading
	err := row.Scan(&r.ID, &r.CreatedAt, &r.BirthDate, &r.BirthTime, &r.BirthLocation,
		&r.SunSign, &r.MoonSign, &r.RisingSign, &r.CardsJSON, &r.ResponsesJSON,
		&r.Insight, &r.Synchronicity)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
