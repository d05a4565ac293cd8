package viewconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file at path, resolving any top-level
// "$include: other.yaml" directive relative to path's directory and
// expanding ${VAR} references in the raw bytes before parsing, the same
// two passes the teacher's config loader applies.
func Load(path string) (Config, error) {
	raw, err := loadRawRecursive(path, make(map[string]bool))
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	bytes, err := yaml.Marshal(raw)
	if err != nil {
		return Config{}, fmt.Errorf("viewconfig: re-marshal merged document: %w", err)
	}
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, fmt.Errorf("viewconfig: decode %s: %w", path, err)
	}
	return cfg, nil
}

func loadRawRecursive(path string, seen map[string]bool) (map[string]any, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("viewconfig: resolve path %s: %w", path, err)
	}
	if seen[abs] {
		return nil, fmt.Errorf("viewconfig: $include cycle at %s", abs)
	}
	seen[abs] = true

	contents, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("viewconfig: read %s: %w", abs, err)
	}
	expanded := os.ExpandEnv(string(contents))

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(expanded), &doc); err != nil {
		return nil, fmt.Errorf("viewconfig: parse %s: %w", abs, err)
	}

	includePath, hasInclude := doc["$include"].(string)
	if !hasInclude {
		return doc, nil
	}
	delete(doc, "$include")

	if !filepath.IsAbs(includePath) {
		includePath = filepath.Join(filepath.Dir(abs), includePath)
	}
	base, err := loadRawRecursive(includePath, seen)
	if err != nil {
		return nil, err
	}
	return mergeMaps(base, doc), nil
}

// mergeMaps overlays override onto base, one level deep, matching the
// teacher loader's shallow merge semantics for $include.
func mergeMaps(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
