package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"golang.org/x/exp/maps"

	"github.com/katalvlaran/cryptarithm/notation"
	"github.com/katalvlaran/cryptarithm/puzzle"
)

// Setting keys shared by every configuration layer.
const (
	keyNotation = "notation"
	keyMinBase  = "min_base"
	keyFile     = "file"
)

// envNames maps setting keys to the environment variables that set them.
var envNames = map[string]string{
	keyNotation: "CRYPTARITHM_NOTATION",
	keyMinBase:  "CRYPTARITHM_MIN_BASE",
	keyFile:     "CRYPTARITHM_FILE",
}

// envMap names the variable holding an assignment list ("A=1,B=2").
const envMap = "CRYPTARITHM_MAP"

const defaultEnvFile = ".env"

// Config is the resolved command configuration.
type Config struct {
	Notation string
	File     string
	MinBase  int
	Mapping  notation.SymbolMap
	Initial  bool
	Verbose  bool
	Formulas bool
}

func defaultSettings() map[string]string {
	return map[string]string{
		keyNotation: "",
		keyMinBase:  "0",
		keyFile:     "",
	}
}

// loadConfig resolves the configuration from, lowest precedence first:
// defaults, the .env file, the process environment, the puzzle file and the
// command line. Assignments are merged symbol by symbol across the same
// layers.
func loadConfig(args []string, getenv func(string) string, usage io.Writer) (Config, error) {
	var (
		cfg     Config
		envFile string
		mapping string
		minBase int
	)
	fset := flag.NewFlagSet("cryptarithm", flag.ContinueOnError)
	fset.SetOutput(usage)
	fset.StringVarP(&cfg.Notation, "notation", "n", "", "puzzle notation, e.g. \"ABC*DE=FAE+GDB=EECE.\"")
	fset.StringVarP(&cfg.File, "file", "f", "", "puzzle document (.toml, .yaml or .yml)")
	fset.StringVarP(&mapping, "map", "m", "", "digit assignments, e.g. \"A=1,B=2\"")
	fset.IntVarP(&minBase, "min-base", "b", 0, "minimum number base (0-36)")
	fset.BoolVarP(&cfg.Initial, "initial", "i", false, "start from the canonical digit of every symbol")
	fset.StringVarP(&envFile, "env-file", "e", defaultEnvFile, "dotenv file read before the environment")
	fset.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log notation diagnostics")
	fset.BoolVar(&cfg.Formulas, "formulas", false, "print each row's check formula")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	settings := defaultSettings()
	symbols := make(notation.SymbolMap)

	// environment: .env first, then the real environment on top of it
	dotenv, err := godotenv.Read(envFile)
	if err != nil && (fset.Changed("env-file") || !errors.Is(err, fs.ErrNotExist)) {
		return Config{}, fmt.Errorf("env file %s: %w", envFile, err)
	}
	env := make(map[string]string, len(envNames)+1)
	maps.Copy(env, dotenv)
	for _, name := range append(maps.Values(envNames), envMap) {
		if v := getenv(name); v != "" {
			env[name] = v
		}
	}
	for key, name := range envNames {
		if v, ok := env[name]; ok && v != "" {
			settings[key] = v
		}
	}
	if v := env[envMap]; v != "" {
		m, err := notation.ParseAssignments(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envMap, err)
		}
		maps.Copy(symbols, m)
	}

	// puzzle file
	if fset.Changed("file") {
		settings[keyFile] = cfg.File
	}
	if path := settings[keyFile]; path != "" {
		p, err := puzzle.Load(path)
		if err != nil {
			return Config{}, err
		}
		m, err := p.SymbolMap()
		if err != nil {
			return Config{}, err
		}
		maps.Copy(settings, map[string]string{
			keyNotation: p.Notation,
			keyMinBase:  strconv.Itoa(p.MinBase),
		})
		maps.Copy(symbols, m)
	}

	// command line
	flags := make(map[string]string)
	if fset.Changed("notation") {
		flags[keyNotation] = cfg.Notation
	} else if fset.NArg() > 0 {
		flags[keyNotation] = strings.Join(fset.Args(), " ")
	}
	if fset.Changed("min-base") {
		flags[keyMinBase] = strconv.Itoa(minBase)
	}
	if fset.Changed("map") {
		m, err := notation.ParseAssignments(mapping)
		if err != nil {
			return Config{}, fmt.Errorf("--map: %w", err)
		}
		maps.Copy(symbols, m)
	}
	maps.Copy(settings, flags)

	cfg.Notation = settings[keyNotation]
	cfg.File = settings[keyFile]
	cfg.Mapping = symbols
	cfg.MinBase, err = strconv.Atoi(settings[keyMinBase])
	if err != nil || cfg.MinBase < 0 || cfg.MinBase > notation.MaxBase {
		return Config{}, fmt.Errorf("min base %q: %w", settings[keyMinBase], errBadMinBase)
	}
	if cfg.Notation == "" {
		return Config{}, errNoNotation
	}

	return cfg, nil
}
