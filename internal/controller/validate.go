package controller

import (
	"strconv"

	"github.com/mmynk/roster/internal/models"
)

// Input holds the raw text of the form fields.
type Input struct {
	FirstName string
	LastName  string
	Age       string
}

// inputOf renders p back into form text.
func inputOf(p models.Person) Input {
	return Input{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Age:       strconv.Itoa(p.Age),
	}
}

// parseInput validates in and converts it into a person without an ID.
// Empty fields are checked first; the age is only parsed when all fields are present.
func parseInput(in Input) (models.Person, error) {
	var missing []Field
	if in.FirstName == "" {
		missing = append(missing, FieldFirstName)
	}
	if in.LastName == "" {
		missing = append(missing, FieldLastName)
	}
	if in.Age == "" {
		missing = append(missing, FieldAge)
	}
	if len(missing) > 0 {
		return models.Person{}, &ValidationError{Missing: missing}
	}

	age, err := strconv.Atoi(in.Age)
	if err != nil || age < 1 {
		return models.Person{}, &ValidationError{InvalidAge: true}
	}

	return models.Person{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Age:       age,
	}, nil
}
