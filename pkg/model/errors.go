package model

import "fmt"

// CapacityError reports a term whose subjects require more lectures than the term has slots.
// It is not recoverable by retrying: the catalog itself over-subscribes the term.
type CapacityError struct {
	Term      int
	Subject   string
	Required  int
	Available int
}

func (err *CapacityError) Error() string {
	return fmt.Sprintf("not enough available slots to assign \"%v\" in term %d: %d required, %d available", err.Subject, err.Term, err.Required, err.Available)
}
