package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCmd_PrintsTreeWhenNotATerminal(t *testing.T) {
	useMemoryStore(t, map[string]string{defaultResultsFile: projectResults})

	output, err := executeCommand(t, "view")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(output, "\n\nAll mutants have been tested"))
	assert.Contains(t, output, "├── Order.cs [2/2 (100.00%)]")
	assert.NotContains(t, output, "┌")
}

func TestViewCmd_ShowIgnoredFromConfig(t *testing.T) {
	useMemoryStore(t, map[string]string{"ignored.yaml": `version: 1
root:
  kind: file
  path: lib/skip.go
  mutants:
    - id: "1"
      status: Ignored
      mutation: {name: statement removed, original: f(), replacement: "", line: 9}
`})

	output, err := executeCommand(t, "view", "ignored.yaml")
	require.NoError(t, err)

	assert.Contains(t, output, "skip.go [0/0 (N/A)]")
	assert.NotContains(t, output, "[Ignored]")
}

func TestViewCmd_MissingResults(t *testing.T) {
	useMemoryStore(t, nil)

	_, err := executeCommand(t, "view", "nowhere.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nowhere.yaml")
}
