package alignment

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// File is one input to an alignment job: either an existing sequence
// referenced by id, or named base64 data.
type File struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Data string `json:"data,omitempty"`
}

// FileFromSequence references an existing sequence by id.
func FileFromSequence(id string) File {
	return File{ID: id}
}

// FileFromData wraps raw sequence data for upload.
func FileFromData(name string, data []byte) File {
	return File{Name: name, Data: base64.StdEncoding.EncodeToString(data)}
}

// FileFromPath reads and encodes a local fasta/ab1 file.
func FileFromPath(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read alignment input: %w", err)
	}
	return FileFromData(filepath.Base(path), data), nil
}

// Options names an external alignment algorithm and its option block as
// the server expects them.
type Options interface {
	Algorithm() string
	Validate() error
}

// MafftOptions are the options for the mafft algorithm. Zero values are
// meaningful to the server, so build from DefaultMafft and adjust.
type MafftOptions struct {
	AdjustDirection     string  `json:"adjust_direction"`
	MaxIterations       int     `json:"max_iterations"`
	Retree              int     `json:"retree"`
	GapOpenPenalty      float64 `json:"gap_open_penalty"`
	GapExtensionPenalty float64 `json:"gap_extension_penalty"`
}

func DefaultMafft() MafftOptions {
	return MafftOptions{
		AdjustDirection: "no",
		Retree:          2,
		GapOpenPenalty:  1.53,
	}
}

func (MafftOptions) Algorithm() string { return "mafft" }

func (o MafftOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.AdjustDirection, validation.Required, validation.In("yes", "no")),
		validation.Field(&o.MaxIterations, validation.Min(0)),
		validation.Field(&o.Retree, validation.Min(0)),
	)
}

// ClustaloOptions are the options for the clustalo algorithm.
type ClustaloOptions struct {
	MaxGuidetreeIterations int    `json:"max_guidetree_iterations"`
	MaxHMMIterations       int    `json:"max_hmm_iterations"`
	MbedGuideTree          string `json:"mbed_guide_tree"`
	MbedIteration          string `json:"mbed_iteration"`
	NumCombinedIterations  int    `json:"num_combined_iterations"`
}

func DefaultClustalo() ClustaloOptions {
	return ClustaloOptions{
		MaxGuidetreeIterations: 10,
		MaxHMMIterations:       25,
		MbedGuideTree:          "yes",
		MbedIteration:          "yes",
	}
}

func (ClustaloOptions) Algorithm() string { return "clustalo" }

func (o ClustaloOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.MbedGuideTree, validation.Required, validation.In("yes", "no")),
		validation.Field(&o.MbedIteration, validation.Required, validation.In("yes", "no")),
		validation.Field(&o.MaxGuidetreeIterations, validation.Min(0)),
		validation.Field(&o.MaxHMMIterations, validation.Min(0)),
	)
}
