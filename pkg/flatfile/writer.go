// Package flatfile serializes mapped dealers into the semicolon delimited
// import layout.
package flatfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cheesesashimi/mazdadealers/pkg/dealer"
)

const (
	Delimiter string = ";"

	dealerType string = "Dealer"
	franchise  string = "Mazda"
)

// Columns is the fixed column order of every line in the file.
var Columns = []string{
	"WorkspaceOrganisationReference",
	"Name",
	"AddressLine1",
	"AddressLine2",
	"AddressLine3",
	"CityTown",
	"County",
	"Postcode",
	"Type",
	"Franchise",
	"IsActive",
	"PhoneNumber",
	"ExternalReferences",
	"Longitude",
	"Latitude",
	"WebsiteUrl",
}

func Header() string {
	return strings.Join(Columns, Delimiter)
}

// Row renders a record in Columns order. Fields are written verbatim; values
// containing the delimiter are not quoted.
func Row(r dealer.Record) []string {
	return []string{
		"",
		r.Name,
		r.AddressLine1,
		r.AddressLine2,
		r.AddressLine3,
		r.CityTown,
		r.County,
		r.Postcode,
		dealerType,
		franchise,
		r.IsActive,
		r.PhoneNumber,
		r.ExternalReferences,
		formatCoordinate(r.Longitude),
		formatCoordinate(r.Latitude),
		r.WebsiteURL,
	}
}

// formatCoordinate uses the shortest decimal representation that round
// trips, always with a '.' separator.
func formatCoordinate(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Encode writes the header line followed by one line per record.
func Encode(w io.Writer, records []dealer.Record) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, Header()); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	for i, r := range records {
		if _, err := fmt.Fprintln(bw, strings.Join(Row(r), Delimiter)); err != nil {
			return fmt.Errorf("could not write dealer %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}

	return nil
}

// WriteFile creates or truncates path and encodes records into it.
func WriteFile(path string, records []dealer.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close %s: %w", path, cerr)
		}
	}()

	return Encode(f, records)
}
