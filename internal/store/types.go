package store

import "time"

// Record is one animal on the persisted roster. Tag is a UUID
// assigned at admission; Species is the label the library uses to
// rebuild the concrete animal type.
type Record struct {
	ID         int64
	Tag        string
	Species    string
	Name       string
	Age        int
	AdmittedAt time.Time
}
