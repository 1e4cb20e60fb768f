// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Competition is the predicate function for competition builders.
type Competition func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ProcessedFile is the predicate function for processedfile builders.
type ProcessedFile func(*sql.Selector)

// RaceResult is the predicate function for raceresult builders.
type RaceResult func(*sql.Selector)
