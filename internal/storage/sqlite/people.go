package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/roster/internal/models"
)

// ListPeople returns every person ordered by ID.
func (s *SQLiteStore) ListPeople(ctx context.Context) ([]models.Person, error) {
	query := `
		SELECT id, first_name, last_name, age
		FROM people
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []models.Person
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Age); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}

	return people, nil
}

// InsertPerson inserts a new person and returns the generated ID.
func (s *SQLiteStore) InsertPerson(ctx context.Context, person models.Person) (int64, error) {
	query := `
		INSERT INTO people (first_name, last_name, age)
		VALUES (?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query, person.FirstName, person.LastName, person.Age)
	if err != nil {
		return 0, fmt.Errorf("failed to insert person: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted person id: %w", err)
	}

	return id, nil
}

// UpdatePerson overwrites the row of old with the fields of updated.
func (s *SQLiteStore) UpdatePerson(ctx context.Context, old, updated models.Person) error {
	query := `
		UPDATE people
		SET first_name = ?, last_name = ?, age = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query, updated.FirstName, updated.LastName, updated.Age, old.ID)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	return expectOneRow(res.RowsAffected, old.ID)
}

// DeletePerson removes the row of person.
func (s *SQLiteStore) DeletePerson(ctx context.Context, person models.Person) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM people WHERE id = ?", person.ID)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	return expectOneRow(res.RowsAffected, person.ID)
}

// expectOneRow turns a zero-row write into a not-found error.
func expectOneRow(rowsAffected func() (int64, error), id int64) error {
	n, err := rowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("person not found: %d", id)
	}
	return nil
}
