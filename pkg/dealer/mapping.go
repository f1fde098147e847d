package dealer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gammazero/workerpool"
)

// TextFilter rewrites a mapped text field before it is stored on a Record.
type TextFilter func(string) string

type MapOptions struct {
	// Workers bounds how many dealers are mapped at once. Values below 1 map
	// sequentially.
	Workers int
	Filter  TextFilter
}

// Parse decodes the API envelope and returns the data.dealers array in the
// order it was received. Envelope keys are matched exactly. Dealers are kept
// raw so that a single malformed element can be skipped without failing the
// whole decode.
func Parse(body []byte) ([]json.RawMessage, error) {
	data, err := member(body, "data")
	if err != nil {
		return nil, fmt.Errorf("could not parse dealer response: %w", err)
	}

	rawDealers, err := member(data, "dealers")
	if err != nil {
		return nil, fmt.Errorf("could not parse dealer response data: %w", err)
	}

	dealers := []json.RawMessage{}
	if err := json.Unmarshal(rawDealers, &dealers); err != nil {
		return nil, fmt.Errorf("could not parse dealer response: %w", err)
	}

	return dealers, nil
}

// member returns the raw value stored under key in the JSON object raw. A
// missing or null value is an error.
func member(raw json.RawMessage, key string) (json.RawMessage, error) {
	obj := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}

	v, ok := obj[key]
	if !ok || isNull(v) {
		return nil, fmt.Errorf("%s is missing", key)
	}

	return v, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// MapAll maps every raw dealer. Results are indexed by input position, so
// the output order matches the input regardless of the worker count.
func MapAll(dealers []json.RawMessage, opts MapOptions) []MapResult {
	results := make([]MapResult, len(dealers))

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	wp := workerpool.New(workers)

	for i, raw := range dealers {
		wp.Submit(func() {
			results[i] = MapRecord(i, raw, opts.Filter)
		})
	}

	wp.StopWait()

	return results
}

// Records returns the successfully mapped records, in order.
func Records(results []MapResult) []Record {
	out := make([]Record, 0, len(results))

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		out = append(out, r.Record)
	}

	return out
}

func MapRecord(index int, raw json.RawMessage, filter TextFilter) MapResult {
	rec, err := mapRecord(raw, filter)
	if err != nil {
		return MapResult{
			Index: index,
			Err:   &MappingError{Index: index, Err: err},
		}
	}

	return MapResult{
		Record: rec,
		Index:  index,
	}
}

func mapRecord(raw json.RawMessage, filter TextFilter) (Record, error) {
	// Numbers stay json.Number until a mapped field asks for one, so an
	// unrepresentable value in a field that is never read is ignored.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return Record{}, err
	}

	d, ok := v.(map[string]interface{})
	if !ok {
		return Record{}, fmt.Errorf("dealer is %s, not an object: %w", jsonType(v), ErrWrongType)
	}

	m := &fieldMapper{obj: object(d), filter: filter}

	rec := Record{
		Name:               m.text("name"),
		AddressLine1:       m.text("address", "address1"),
		AddressLine2:       m.addressLine2(),
		CityTown:           m.text("address", "city"),
		Postcode:           m.text("address", "postcode"),
		PhoneNumber:        m.text("contact", "phoneNumber", "default"),
		ExternalReferences: m.text("id"),
		Latitude:           m.number("address", "coordinates", "latitude"),
		Longitude:          m.number("address", "coordinates", "longitude"),
		WebsiteURL:         m.text("contact", "website"),
		IsActive:           m.active(),
	}

	if m.err != nil {
		return Record{}, m.err
	}

	return rec, nil
}

// fieldMapper remembers the first lookup error so a record can be built in a
// single expression and rejected afterwards.
type fieldMapper struct {
	obj    object
	filter TextFilter
	err    error
}

func (m *fieldMapper) text(path ...string) string {
	s, _, err := stringAt(m.obj, path...)
	if err != nil {
		m.fail(err)
		return ""
	}

	return m.clean(s)
}

// addressLine2 prefers address2 whenever the key is present, even when its
// value is null.
func (m *fieldMapper) addressLine2() string {
	present, err := hasKey(m.obj, "address", "address2")
	if err != nil {
		m.fail(err)
		return ""
	}

	if present {
		return m.text("address", "address2")
	}

	return m.text("address", "street2")
}

func (m *fieldMapper) number(path ...string) float64 {
	f, err := floatAt(m.obj, path...)
	if err != nil {
		m.fail(err)
		return 0
	}

	return f
}

func (m *fieldMapper) active() string {
	b, err := boolAt(m.obj, "active")
	if err != nil {
		m.fail(err)
		return activeFalse
	}

	if b {
		return activeTrue
	}

	return activeFalse
}

func (m *fieldMapper) clean(s string) string {
	if m.filter == nil || s == "" {
		return s
	}

	return m.filter(s)
}

func (m *fieldMapper) fail(err error) {
	if m.err == nil {
		m.err = err
	}
}
