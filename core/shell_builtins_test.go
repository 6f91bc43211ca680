package core

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salvadorprieto/myshell/core/alias"
	"github.com/salvadorprieto/myshell/core/config"
	"github.com/salvadorprieto/myshell/core/logger"
	"github.com/salvadorprieto/myshell/core/shell"
)

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	cfg := &config.Configuration{
		ShellName:  config.DefaultShellName,
		Terminator: config.DefaultTerminator,
		MaxAliases: config.DefaultMaxAliases,
	}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	sh := NewShell(cfg, afero.NewMemMapFs(), strings.NewReader(""), stdout, stderr, logger.Nop().NewSession())
	return sh, stdout, stderr
}

func run(sh *Shell, line string) Signal {
	return sh.Execute(shell.Split(line))
}

func TestAllBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{
		"cd", "help", "exit", "setshellname", "setterminator",
		"newname", "listnewnames", "savenewnames", "readnewnames", "STOP",
	} {
		t.Run(name, func(t *testing.T) {
			builtin, ok := AllBuiltins[name]
			assert.True(t, ok)
			assert.NotNil(t, builtin)
		})
	}

	// Builtin names are case sensitive.
	_, ok := AllBuiltins["stop"]
	assert.False(t, ok)
}

func TestPromptAfterNameAndTerminator(t *testing.T) {
	sh, stdout, stderr := newTestShell(t)

	assert.Equal(t, "myshell> ", sh.Prompt())
	assert.Equal(t, Continue, run(sh, "setshellname bob"))
	assert.Equal(t, Continue, run(sh, "setterminator $"))
	assert.Equal(t, "bob$ ", sh.Prompt())

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestPromptReset(t *testing.T) {
	sh, _, _ := newTestShell(t)

	run(sh, "setshellname bob")
	run(sh, "setterminator $")
	run(sh, "setshellname")
	run(sh, "setterminator")
	assert.Equal(t, "myshell> ", sh.Prompt())
}

func TestEmptyLineIsNoOp(t *testing.T) {
	sh, stdout, stderr := newTestShell(t)

	assert.Equal(t, Continue, sh.Execute(nil))
	assert.Equal(t, Continue, run(sh, ""))
	assert.Equal(t, Continue, run(sh, " \t \a "))

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
	assert.Equal(t, 0, sh.Aliases.Len())
}

func TestExitAndStop(t *testing.T) {
	sh, _, _ := newTestShell(t)

	assert.Equal(t, Stop, run(sh, "exit"))
	assert.Equal(t, Stop, run(sh, "STOP"))
	// Trailing arguments are ignored.
	assert.Equal(t, Stop, run(sh, "exit now please"))
}

func TestNewNameDefineAndResolve(t *testing.T) {
	sh, _, stderr := newTestShell(t)

	assert.Equal(t, Continue, run(sh, "newname ll ls"))
	assert.Empty(t, stderr.String())

	// The alias carries only the target command name.
	assert.Equal(t, []string{"ls"}, sh.resolve([]string{"ll"}))
	assert.Equal(t, []string{"ls", "-l"}, sh.resolve([]string{"ll", "-l"}))
}

func TestNewNameExtraArgsIgnored(t *testing.T) {
	sh, _, stderr := newTestShell(t)

	// Only the pair is used; "-l" never becomes part of the definition.
	run(sh, "newname ll ls -l")
	assert.Empty(t, stderr.String())
	assert.Equal(t, []string{"ls"}, sh.resolve([]string{"ll"}))
}

func TestNewNameUsage(t *testing.T) {
	sh, _, stderr := newTestShell(t)

	run(sh, "newname")
	assert.Contains(t, stderr.String(), "expected 1 or 2 arguments")
}

func TestNewNameDeleteMissing(t *testing.T) {
	sh, _, stderr := newTestShell(t)

	assert.Equal(t, Continue, run(sh, "newname ll"))
	assert.Contains(t, stderr.String(), "alias not found")
	assert.Equal(t, 0, sh.Aliases.Len())
}

func TestNewNameDelete(t *testing.T) {
	sh, _, stderr := newTestShell(t)

	run(sh, "newname ll ls")
	run(sh, "newname ll")
	assert.Empty(t, stderr.String())
	assert.Equal(t, 0, sh.Aliases.Len())
}

func TestNewNameCapacity(t *testing.T) {
	sh, _, stderr := newTestShell(t)
	sh.Aliases = alias.NewTable(2)

	run(sh, "newname a 1")
	run(sh, "newname b 2")
	assert.Empty(t, stderr.String())

	run(sh, "newname c 3")
	assert.Contains(t, stderr.String(), "maximum number of aliases")
	assert.Equal(t, 2, sh.Aliases.Len())
}

func TestListNewNames(t *testing.T) {
	sh, stdout, _ := newTestShell(t)

	run(sh, "newname a b")
	run(sh, "newname c d")
	run(sh, "listnewnames")

	assert.Equal(t, "a -> b\nc -> d\n", stdout.String())
}

func TestAliasBeforeBuiltinPrecedence(t *testing.T) {
	sh, stdout, _ := newTestShell(t)

	// "greet" resolves to a builtin name, so the substituted name is what
	// hits the registry.
	run(sh, "newname greet listnewnames")
	assert.Equal(t, Continue, run(sh, "greet"))
	assert.Equal(t, "greet -> listnewnames\n", stdout.String())
}

func TestAliasSubstitutionHappensOnce(t *testing.T) {
	sh, _, _ := newTestShell(t)

	run(sh, "newname a b")
	run(sh, "newname b c")

	// a -> b and stops; b is not re-resolved to c.
	assert.Equal(t, []string{"b"}, sh.resolve([]string{"a"}))
}

func TestSaveAndReadNewNames(t *testing.T) {
	sh, stdout, stderr := newTestShell(t)

	run(sh, "newname ll ls")
	run(sh, "newname quit exit")
	run(sh, "savenewnames aliases.txt")
	require.Empty(t, stderr.String())

	// A fresh shell over the same filesystem reads them back in order.
	fresh := NewShell(sh.config, sh.fs, strings.NewReader(""), stdout, stderr, logger.Nop().NewSession())
	run(fresh, "readnewnames aliases.txt")
	require.Empty(t, stderr.String())

	run(fresh, "listnewnames")
	assert.Equal(t, "ll -> ls\nquit -> exit\n", stdout.String())
}

func TestSaveNewNamesUsage(t *testing.T) {
	sh, _, stderr := newTestShell(t)

	run(sh, "savenewnames")
	assert.Contains(t, stderr.String(), "expected argument")
}

func TestReadNewNamesMissingFile(t *testing.T) {
	sh, _, stderr := newTestShell(t)

	assert.Equal(t, Continue, run(sh, "readnewnames no-such-file"))
	assert.NotEmpty(t, stderr.String())
	assert.Equal(t, 0, sh.Aliases.Len())
}

func TestCdUsage(t *testing.T) {
	sh, _, stderr := newTestShell(t)

	assert.Equal(t, Continue, run(sh, "cd"))
	assert.Contains(t, stderr.String(), "expected argument")
}

func TestCdBadDirectory(t *testing.T) {
	sh, _, stderr := newTestShell(t)

	assert.Equal(t, Continue, run(sh, "cd /definitely/not/a/directory"))
	assert.NotEmpty(t, stderr.String())
}

func TestHelp(t *testing.T) {
	sh, stdout, _ := newTestShell(t)

	assert.Equal(t, Continue, run(sh, "help"))

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)
	g.Assert(t, "help", stdout.Bytes())
}

