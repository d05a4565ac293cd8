// Package viewconfig loads the tunables that sit around the pure view
// engine: tool-call matching mode and the reference condenser's
// thresholds. The engine's own public API takes no config; this package
// only shapes how callers construct engine and condenser instances.
package viewconfig

// MatchingMode selects how ToolCallMatchingProperty handles an
// unmatched action or observation.
type MatchingMode string

const (
	// MatchingLenient drops orphaned actions/observations silently.
	MatchingLenient MatchingMode = "lenient"
	// MatchingStrict surfaces a MatchingError instead.
	MatchingStrict MatchingMode = "strict"
)

// Strict reports whether this mode requires strict matching.
func (m MatchingMode) Strict() bool {
	return m == MatchingStrict
}

// CondenserConfig mirrors condenser.Config's shape for YAML loading.
type CondenserConfig struct {
	MaxContextTokens int `yaml:"max_context_tokens"`
	KeepRecentEvents int `yaml:"keep_recent_events"`
	ChunkTokens      int `yaml:"chunk_tokens"`
}

// Config is the top-level configuration document for a process that
// runs the view engine and, optionally, the reference condenser.
type Config struct {
	Matching  MatchingMode    `yaml:"matching_mode"`
	Condenser CondenserConfig `yaml:"condenser"`
}

// Default returns the engine's default tunables: lenient matching and
// the condenser's own defaults.
func Default() Config {
	return Config{
		Matching: MatchingLenient,
		Condenser: CondenserConfig{
			MaxContextTokens: 100_000,
			KeepRecentEvents: 20,
			ChunkTokens:      20_000,
		},
	}
}
