// Package models defines the core domain models for Roster.
//
// # Models
//
//   - Person: one record of the people table (first name, last name, age)
//
// # Design Principles
//
// 1. **Value records**: models are plain structs passed by value; a record is
// replaced as a whole, never patched field by field.
// 2. **Identity vs. sameness**: the store identifies rows by ID, while
// duplicate detection compares the visible fields only (see Person.SameAs).
// 3. **No behavior beyond comparison**: validation of user input lives in the
// controller package, persistence in the storage package.
package models
