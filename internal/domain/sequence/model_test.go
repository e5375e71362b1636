package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	seq := &Sequence{
		ID:    "seq_1",
		Bases: "ATGCATGC",
		Annotations: []Annotation{
			{Name: "whole plasmid", Start: 0, End: 0},
			{Name: "promoter", Start: 2, End: 5},
		},
	}

	seq.Normalize()

	// End == 0 is the server's end-of-molecule sentinel.
	assert.Equal(t, 8, seq.Annotations[0].End)
	// Real end positions are untouched.
	assert.Equal(t, 5, seq.Annotations[1].End)
}

func TestCreateOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    CreateOptions
		wantErr bool
	}{
		{
			name: "valid",
			opts: CreateOptions{Name: "pUC19", Bases: "ATGC", Folder: "lib_1"},
		},
		{
			name:    "missing name",
			opts:    CreateOptions{Bases: "ATGC", Folder: "lib_1"},
			wantErr: true,
		},
		{
			name:    "missing bases",
			opts:    CreateOptions{Name: "pUC19", Folder: "lib_1"},
			wantErr: true,
		},
		{
			name:    "missing folder",
			opts:    CreateOptions{Name: "pUC19", Bases: "ATGC"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
