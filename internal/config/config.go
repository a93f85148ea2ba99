// Package config builds and validates the CLI's flag set (spec §6.1,
// §10.2), mirroring the teacher's own BuildConfigFromFlags/validateFlags
// split in internal/config/cli.go.
package config

// Config holds one invocation's resolved CLI parameters.
type Config struct {
	// Src is the positional path to the source header to convert.
	Src string

	// Output is the path (without extension) the three emitters write
	// <Output>.h/.cpp/.json to. Defaults to Src's basename, sans
	// extension, in the current directory.
	Output string

	// TemplateDir is the directory holding "<basename-of-src>-header.cpp",
	// the hand-written thunk-file template (§6.1).
	TemplateDir string

	// CacheDB is the path to the SQLite conversion cache (§10.5).
	CacheDB string
	// NoCache disables the conversion cache entirely.
	NoCache bool

	// Verbose raises log verbosity (§10.1).
	Verbose bool
	// JSON selects JSON-formatted fatal-error output over plain text.
	JSON bool

	// EnvFile, if set, is loaded via godotenv before flags are re-read
	// for their defaults (§10.2).
	EnvFile string
}
