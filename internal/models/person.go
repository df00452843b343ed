package models

// Person represents one record of the roster.
type Person struct {
	// ID is the row identifier assigned by the store on insert.
	// Zero until the person has been persisted.
	ID int64

	// FirstName is the given name. The roster filter matches against it.
	FirstName string

	// LastName is the family name.
	LastName string

	// Age is the age in years. Always >= 1 for a validated person.
	Age int
}

// SameAs reports whether p and other describe the same person.
// Two people are the same when first name, last name and age are equal;
// the ID is ignored, so an unsaved candidate matches a stored record.
func (p Person) SameAs(other Person) bool {
	return p.FirstName == other.FirstName &&
		p.LastName == other.LastName &&
		p.Age == other.Age
}
