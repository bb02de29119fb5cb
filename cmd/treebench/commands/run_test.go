package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/bintree/internal/config"
	"github.com/g-m-twostay/bintree/internal/workload"
)

func TestRunCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := NewRunCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--n", "400", "--steps", "2", "--subjects", "rb,treap,btree"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "400 keys, 2 steps")
	assert.Contains(t, out.String(), "treap")
	assert.Contains(t, out.String(), "btree")
}

func TestRunCommand_UnknownSubject(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := NewRunCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--n", "10", "--subjects", "splay"})

	require.ErrorIs(t, cmd.Execute(), workload.ErrUnknownSubject)
}

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "treebench dev\n", out.String())
}

func TestRunCommand_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TREEBENCH_WORKLOAD_N", "5")

	cmd := NewRunCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--n", "400", "--steps", "2", "--subjects", "rb"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "400 keys, 2 steps")
}

func TestRunCommand_InvalidEnvWithoutFlag(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TREEBENCH_WORKLOAD_N", "5")

	cmd := NewRunCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--subjects", "rb"})

	require.ErrorIs(t, cmd.Execute(), config.ErrInvalidSteps)
}
