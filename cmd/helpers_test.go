package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/mutareport/internal/adapter"
)

const projectResults = `version: 1
root:
  kind: folder
  path: ""
  full_path: C://ProjectFolder
  children:
    - kind: file
      path: ProjectFolder/Order.cs
      mutants:
        - id: "1"
          status: Killed
          mutation: {name: This name should display, category: arithmetic, original: 0 + 8, replacement: 0 -8, line: 1}
        - id: "2"
          status: Killed
          mutation: {name: This name should display, category: arithmetic, original: 0 + 8, replacement: 0 -8, line: 1}
    - kind: folder
      path: Subdir
      children:
        - kind: file
          path: ProjectFolder/SubDir/OrderItem.cs
        - kind: file
          path: ProjectFolder/SubDir/CustomerOrdersWithItemsSpecification.cs
          mutants:
            - id: "3"
              status: Survived
              mutation: {name: This name should display, category: equality, original: 0 + 8, replacement: 0 -8, line: 1}
`

// useMemoryStore swaps the result store for one on an in-memory filesystem
// holding files.
func useMemoryStore(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	original := resultStore
	resultStore = adapter.NewYAMLResultStore(fs)

	t.Cleanup(func() { resultStore = original })

	return fs
}

// executeCommand runs a fresh command tree with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newReportCmd(), newViewCmd(), newMergeCmd(), newInitCmd(), newVersionCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-file", filepath.Join(t.TempDir(), "mutareport.log")}, args...))

	err := cmd.Execute()

	return out.String(), err
}
