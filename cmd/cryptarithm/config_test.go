package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cryptarithm/notation"
)

func envOf(kv map[string]string) func(string) string {
	return func(name string) string { return kv[name] }
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfig_Flags(t *testing.T) {
	cfg, err := loadConfig([]string{"-n", "AB+CD=EF.", "-b", "10", "-m", "A=1,B=2", "-iv", "--formulas"}, envOf(nil), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "AB+CD=EF.", cfg.Notation)
	assert.Equal(t, 10, cfg.MinBase)
	assert.Equal(t, notation.SymbolMap{'A': '1', 'B': '2'}, cfg.Mapping)
	assert.True(t, cfg.Initial)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Formulas)
}

func TestLoadConfig_PositionalNotation(t *testing.T) {
	cfg, err := loadConfig([]string{"AB+CD", "=EF."}, envOf(nil), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "AB+CD =EF.", cfg.Notation)
	assert.Equal(t, 0, cfg.MinBase)
}

// TestLoadConfig_EnvLayers: the process environment beats .env, and the
// command line beats both, symbol by symbol for assignments.
func TestLoadConfig_EnvLayers(t *testing.T) {
	dotenv := writeFile(t, "test.env", "CRYPTARITHM_NOTATION=X+Y=Z.\nCRYPTARITHM_MIN_BASE=12\nCRYPTARITHM_MAP=X=1,Y=2\n")
	env := envOf(map[string]string{
		"CRYPTARITHM_MIN_BASE": "16",
		"CRYPTARITHM_MAP":      "X=5,Z=7",
	})

	cfg, err := loadConfig([]string{"-e", dotenv, "-m", "Z=9"}, env, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "X+Y=Z.", cfg.Notation, "from .env")
	assert.Equal(t, 16, cfg.MinBase, "environment beats .env")
	assert.Equal(t, notation.SymbolMap{'X': '5', 'Z': '9'}, cfg.Mapping, "process map replaces the .env map; flags win per symbol")
}

func TestLoadConfig_PuzzleFile(t *testing.T) {
	doc := writeFile(t, "p.toml", "notation = \"A+B=CD.\"\nmin_base = 10\n[mapping]\nA = \"7\"\nB = \"9\"\n")
	env := envOf(map[string]string{
		"CRYPTARITHM_NOTATION": "ignored",
		"CRYPTARITHM_MAP":      "A=1,C=1",
	})

	cfg, err := loadConfig([]string{"-f", doc, "-b", "12", "-m", "D=4"}, env, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "A+B=CD.", cfg.Notation, "file beats environment")
	assert.Equal(t, 12, cfg.MinBase, "flag beats file")
	assert.Equal(t, notation.SymbolMap{'A': '7', 'B': '9', 'C': '1', 'D': '4'}, cfg.Mapping)
	assert.Equal(t, doc, cfg.File)

	// the file can also be named by the environment
	cfg, err = loadConfig(nil, envOf(map[string]string{"CRYPTARITHM_FILE": doc}), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MinBase)
}

func TestLoadConfig_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")
	badDoc := writeFile(t, "p.toml", "notation = \"A+B=C\"\n[mapping]\nA = \"!!\"\n")

	tests := []struct {
		name string
		args []string
		env  map[string]string
		want error
	}{
		{"help", []string{"--help"}, nil, flag.ErrHelp},
		{"no notation", nil, nil, errNoNotation},
		{"min base too large", []string{"-b", "40", "A+B=C"}, nil, errBadMinBase},
		{"min base not a number", []string{"A+B=C"}, map[string]string{"CRYPTARITHM_MIN_BASE": "ten"}, errBadMinBase},
		{"bad flag map", []string{"-m", "A1", "A+B=C"}, nil, notation.ErrBadAssignment},
		{"bad env map", []string{"A+B=C"}, map[string]string{"CRYPTARITHM_MAP": "A=?"}, notation.ErrDigitOutOfRange},
		{"explicit env file missing", []string{"-e", missing, "A+B=C"}, nil, os.ErrNotExist},
		{"puzzle file missing", []string{"-f", filepath.Join(t.TempDir(), "p.yaml")}, nil, os.ErrNotExist},
		{"bad puzzle mapping", []string{"-f", badDoc}, nil, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadConfig(tc.args, envOf(tc.env), io.Discard)
			require.Error(t, err)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}
