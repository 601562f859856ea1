package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	if strings.Contains(output, "mutareport version: unknown") {
		assert.Contains(t, output, "mutareport version: unknown")
		return
	}

	assert.True(t, strings.HasPrefix(output, "mutareport "))
	assert.Contains(t, output, "go version")
}

func TestBuildSetting(t *testing.T) {
	info := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: vcsRevisionSetting, Value: "4f2a9c1"},
	}}

	assert.Equal(t, "4f2a9c1", buildSetting(info, vcsRevisionSetting))
	assert.Empty(t, buildSetting(info, "vcs.time"))
}
