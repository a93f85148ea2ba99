package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// BuildConfigFromFlags parses args into a Config, loading an --env-file
// first (if given) to supply flag defaults, mirroring the teacher's
// dotenv-before-parse convention.
func BuildConfigFromFlags(args []string) (*Config, error) {
	envFile := peekEnvFile(args)
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file %q: %w", envFile, err)
		}
	}

	fs := pflag.NewFlagSet("dearbind", pflag.ContinueOnError)
	fs.Usage = func() { PrintUsage(fs) }

	output := fs.StringP("output", "o", "", "Output path, without extension; .h/.cpp/.json are appended.")
	templateDir := fs.StringP("templatedir", "t", "", "Directory containing <basename-of-src>-header.cpp.")
	cacheDB := fs.String("cache-db", defaultCacheDBPath(), "Path to the SQLite conversion cache.")
	noCache := fs.Bool("no-cache", false, "Disable the conversion cache.")
	verbose := fs.BoolP("verbose", "v", false, "Raise log verbosity.")
	jsonOut := fs.Bool("json", false, "Emit fatal errors as JSON instead of plain text.")
	fs.String("env-file", "", "Dotenv file of default flag values.")

	// Each flag's default comes from DEARBIND_<NAME> (upper-cased, "-" as
	// "_", e.g. DEARBIND_TEMPLATEDIR) when set; the env file may set them.
	var envErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if v, ok := os.LookupEnv("DEARBIND_" + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))); ok && envErr == nil {
			envErr = f.Value.Set(v)
		}
	})
	if envErr != nil {
		return nil, envErr
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return validateFlags(fs, &Config{
		Output:      *output,
		TemplateDir: *templateDir,
		CacheDB:     *cacheDB,
		NoCache:     *noCache,
		Verbose:     *verbose,
		JSON:        *jsonOut,
		EnvFile:     envFile,
	})
}

// peekEnvFile scans args for --env-file ahead of the real flag parse,
// since the file has to be loaded before pflag resolves the other flags'
// defaults from it.
func peekEnvFile(args []string) string {
	for i, a := range args {
		if a == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := flagValue(a, "--env-file="); ok {
			return v
		}
	}
	return ""
}

func flagValue(arg, prefix string) (string, bool) {
	if len(arg) > len(prefix) && arg[:len(prefix)] == prefix {
		return arg[len(prefix):], true
	}
	return "", false
}

func validateFlags(fs *pflag.FlagSet, cfg *Config) (*Config, error) {
	src, err := resolveSrc(fs)
	if err != nil {
		fs.Usage()
		return nil, flag.ErrHelp
	}
	cfg.Src = src

	if cfg.Output == "" {
		cfg.Output = defaultOutputPath(src)
	}
	return cfg, nil
}
