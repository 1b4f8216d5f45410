package diagnostic

import (
	"sort"
	"strings"
)

// Record is the canonical description of one diagnostic.
type Record struct {
	// Code is the display code, e.g. CS0001 or CA1802.
	Code     string
	Message  string
	Severity Severity
}

// Key returns the registry key of the record.
func (r Record) Key() string {
	return Key(r.Code)
}

// Key normalizes a diagnostic code into a registry key.
func Key(code string) string {
	return strings.ToLower(code)
}

// Registry maps lowercase diagnostic codes to records.
// A registry holds at most one record per key; a later Put replaces an earlier one.
type Registry struct {
	records map[string]Record
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[string]Record)}
}

// Put stores r under its lowercase code.
func (reg *Registry) Put(r Record) {
	reg.records[r.Key()] = r
}

// Get looks up a record by code, ignoring case.
func (reg *Registry) Get(code string) (Record, bool) {
	r, ok := reg.records[Key(code)]
	return r, ok
}

// Len returns the number of records.
func (reg *Registry) Len() int {
	return len(reg.records)
}

// Keys returns every key in ascending order.
func (reg *Registry) Keys() []string {
	keys := make([]string, 0, len(reg.records))
	for k := range reg.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Records returns every record in ascending key order.
func (reg *Registry) Records() []Record {
	keys := reg.Keys()
	records := make([]Record, 0, len(keys))
	for _, k := range keys {
		records = append(records, reg.records[k])
	}
	return records
}

// Clone returns an independent copy of reg.
func (reg *Registry) Clone() *Registry {
	out := &Registry{records: make(map[string]Record, len(reg.records))}
	for k, r := range reg.records {
		out.records[k] = r
	}
	return out
}

// Layer returns a new registry holding reg with upper applied on top.
// For keys present in both, the record from upper wins. Neither input is modified.
func (reg *Registry) Layer(upper *Registry) *Registry {
	out := reg.Clone()
	if upper == nil {
		return out
	}
	for k, r := range upper.records {
		out.records[k] = r
	}
	return out
}
