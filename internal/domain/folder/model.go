package folder

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"benchkit/internal/domain/record"
	"benchkit/internal/domain/sequence"
)

// Folder types accepted by the API.
const (
	TypeInventory = "INVENTORY"
	TypeNotebook  = "NOTEBOOK"
	TypeAll       = "ALL"
)

// Folder is a container of sequences. The listing endpoint embeds the
// full sequence records, which the refresh pass flattens into the
// sequence cache.
type Folder struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Type        string               `json:"type"`
	Owner       string               `json:"owner"`
	Sequences   []*sequence.Sequence `json:"sequences"`
}

var schema = record.Schema{
	{Name: "id"},
	{Name: "name"},
	{Name: "description", Optional: true},
	{Name: "type", Optional: true},
	{Name: "owner", Optional: true},
}

func (f *Folder) RecordID() string            { return f.ID }
func (f *Folder) RecordSchema() record.Schema { return schema }

// CreateOptions is the payload for creating a folder; id is
// server-managed and never sent.
type CreateOptions struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Owner       string `json:"owner,omitempty"`
	Type        string `json:"type,omitempty"`
}

func (o CreateOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Name, validation.Required),
		validation.Field(&o.Type, validation.In(TypeInventory, TypeNotebook, TypeAll)),
	)
}
