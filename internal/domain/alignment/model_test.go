package alignment

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMafft(t *testing.T) {
	opts := DefaultMafft()
	require.NoError(t, opts.Validate())
	assert.Equal(t, "mafft", opts.Algorithm())

	body, err := json.Marshal(opts)
	require.NoError(t, err)

	// Wire keys and defaults the alignment service expects.
	assert.JSONEq(t, `{
		"adjust_direction": "no",
		"max_iterations": 0,
		"retree": 2,
		"gap_open_penalty": 1.53,
		"gap_extension_penalty": 0
	}`, string(body))
}

func TestDefaultClustalo(t *testing.T) {
	opts := DefaultClustalo()
	require.NoError(t, opts.Validate())
	assert.Equal(t, "clustalo", opts.Algorithm())

	body, err := json.Marshal(opts)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"max_guidetree_iterations": 10,
		"max_hmm_iterations": 25,
		"mbed_guide_tree": "yes",
		"mbed_iteration": "yes",
		"num_combined_iterations": 0
	}`, string(body))
}

func TestOptionsValidate(t *testing.T) {
	mafft := DefaultMafft()
	mafft.AdjustDirection = "maybe"
	assert.Error(t, mafft.Validate())

	clustalo := DefaultClustalo()
	clustalo.MbedGuideTree = ""
	assert.Error(t, clustalo.Validate())
}

func TestFiles(t *testing.T) {
	t.Run("from sequence id", func(t *testing.T) {
		f := FileFromSequence("seq_1")
		body, err := json.Marshal(f)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id": "seq_1"}`, string(body))
	})

	t.Run("from data", func(t *testing.T) {
		f := FileFromData("read.ab1", []byte("ATGC"))
		assert.Equal(t, "read.ab1", f.Name)

		decoded, err := base64.StdEncoding.DecodeString(f.Data)
		require.NoError(t, err)
		assert.Equal(t, "ATGC", string(decoded))
	})
}
