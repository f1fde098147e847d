package dealer

import (
	"errors"
	"fmt"
)

// ErrWrongType is wrapped by lookups that find a present value of an
// unexpected JSON type.
var ErrWrongType = errors.New("unexpected json type")

// Record is one dealer mapped into the fixed output schema.
type Record struct {
	Name               string
	AddressLine1       string
	AddressLine2       string
	AddressLine3       string
	CityTown           string
	County             string
	Postcode           string
	PhoneNumber        string
	ExternalReferences string
	Latitude           float64
	Longitude          float64
	WebsiteURL         string
	IsActive           string
}

// MapResult carries either a mapped Record or the reason the raw element at
// Index could not be mapped.
type MapResult struct {
	Record
	Index int
	Err   error
}

type MappingError struct {
	Index int
	Err   error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("dealer %d: %v", e.Index, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

const (
	activeTrue  string = "TRUE"
	activeFalse string = "FALSE"
)
