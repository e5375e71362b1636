package record

// Field is a single declared field of a record type. Only declared
// fields participate in serialization and cache queries; anything else
// the server sends is ignored.
type Field struct {
	Name     string
	Optional bool
}

// Schema is the ordered field declaration for a record type, fixed at
// compile time.
type Schema []Field

// Names returns the declared field names in declaration order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for _, f := range s {
		names = append(names, f.Name)
	}
	return names
}

// Has reports whether name is a declared field.
func (s Schema) Has(name string) bool {
	for _, f := range s {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Model is a typed, identifier-bearing unit of domain data mirrored
// from a server resource.
type Model interface {
	RecordID() string
	RecordSchema() Schema
}
