package sequence

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"benchkit/internal/domain/record"
)

// Sequence is a DNA sequence record. Folder holds the id of the owning
// folder once a batch refresh has resolved relationships; sequences
// fetched individually keep whatever the server sent.
type Sequence struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Bases       string       `json:"bases"`
	Circular    bool         `json:"circular"`
	Description string       `json:"description"`
	Color       string       `json:"color"`
	Aliases     []string     `json:"aliases"`
	Folder      string       `json:"folder"`
	Annotations []Annotation `json:"annotations"`
	Primers     []Primer     `json:"primers"`
}

// Annotation is a feature annotation owned by its sequence. End == 0 is
// a server-side sentinel for "end of molecule" until Normalize runs.
type Annotation struct {
	Name        string `json:"name"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Color       string `json:"color"`
	Strand      int    `json:"strand"`
	Type        string `json:"type"`
	Description string `json:"description"`
	EditURL     string `json:"editURL"`
	Length      int    `json:"length"`
}

// Primer is an oligo primer owned by its sequence.
type Primer struct {
	Bases          string `json:"bases"`
	BindPosition   int    `json:"bind_position"`
	Color          string `json:"color"`
	Start          int    `json:"start"`
	End            int    `json:"end"`
	Strand         int    `json:"strand"`
	OverhangLength int    `json:"overhang_length"`
}

var schema = record.Schema{
	{Name: "id"},
	{Name: "name"},
	{Name: "bases"},
	{Name: "circular"},
	{Name: "description", Optional: true},
	{Name: "color", Optional: true},
	{Name: "aliases", Optional: true},
	{Name: "folder", Optional: true},
}

func (s *Sequence) RecordID() string            { return s.ID }
func (s *Sequence) RecordSchema() record.Schema { return schema }

// Normalize rewrites the end-of-molecule sentinel on every annotation to
// the actual sequence length. Annotations with a real end are untouched.
func (s *Sequence) Normalize() {
	for i := range s.Annotations {
		if s.Annotations[i].End == 0 {
			s.Annotations[i].End = len(s.Bases)
		}
	}
}

// CreateOptions is the payload for creating a sequence. Server-managed
// fields (id) are never part of it.
type CreateOptions struct {
	Name        string       `json:"name"`
	Bases       string       `json:"bases"`
	Circular    bool         `json:"circular"`
	Folder      string       `json:"folder"`
	Description string       `json:"description,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
	Aliases     []string     `json:"aliases,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
}

func (o CreateOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Name, validation.Required),
		validation.Field(&o.Bases, validation.Required),
		validation.Field(&o.Folder, validation.Required),
	)
}
