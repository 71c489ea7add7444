// Package reference holds the static lookup tables used to render rows:
// team display name to team code, and driver name to flag code.
package reference

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Team maps a team's display name to its code.
type Team struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Data implements results.Lookup.
type Data struct {
	Teams []Team            `yaml:"teams"`
	Flags map[string]string `yaml:"flags"`
}

// Default returns the built-in tables.
func Default() (*Data, error) {
	return parse(defaultsYAML)
}

// Load returns the built-in tables overridden by the YAML file at path.
// Teams from the file take precedence over built-in teams with the same
// name; flags from the file replace built-in flags for the same driver.
func Load(path string) (*Data, error) {
	d, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return d, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference file: %w", err)
	}
	override, err := parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	d.Teams = append(override.Teams, d.Teams...)
	for driver, flag := range override.Flags {
		d.Flags[driver] = flag
	}
	return d, nil
}

func parse(b []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("failed to parse reference data: %w", err)
	}
	if d.Flags == nil {
		d.Flags = map[string]string{}
	}
	return &d, nil
}

// TeamCode returns the lower-cased code of the first team whose name
// equals name exactly, or "".
func (d *Data) TeamCode(name string) string {
	t, ok := lo.Find(d.Teams, func(t Team) bool { return t.Name == name })
	if !ok {
		return ""
	}
	return strings.ToLower(t.Code)
}

// Flag returns the flag code for a cleaned driver name, or "".
func (d *Data) Flag(driver string) string {
	return d.Flags[driver]
}
