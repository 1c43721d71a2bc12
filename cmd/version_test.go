package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	t.Run("short output", func(t *testing.T) {
		buf := new(bytes.Buffer)
		root := NewRootCmd()
		root.SetOut(buf)
		root.SetArgs([]string{"version", "--short"})

		require.NoError(t, root.Execute())
		assert.Equal(t, "v"+Version+"\n", buf.String())
	})

	t.Run("full output", func(t *testing.T) {
		buf := new(bytes.Buffer)
		root := NewRootCmd()
		root.SetOut(buf)
		root.SetArgs([]string{"version"})

		require.NoError(t, root.Execute())
		out := buf.String()
		assert.Contains(t, out, "Annotator API")
		assert.Contains(t, out, "Version:")
		assert.Contains(t, out, "Go Version:")
	})
}
