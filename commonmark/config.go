package commonmark

import "fmt"

// Flavor selects the markdown dialect goldmark parses.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Config configures the goldmark-backed converter.
type Config struct {
	Flavor     Flavor `json:"flavor,omitempty" yaml:"flavor,omitempty"`
	HardWraps  bool   `json:"hardWraps,omitempty" yaml:"hardWraps,omitempty"`
	Unsafe     bool   `json:"unsafe,omitempty" yaml:"unsafe,omitempty"`
	HeadingIDs bool   `json:"headingIDs,omitempty" yaml:"headingIDs,omitempty"`
}

func (c Config) applyDefaults() Config {
	if c.Flavor == "" {
		c.Flavor = FlavorGFM
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.Flavor != FlavorCommonMark && c.Flavor != FlavorGFM {
		return fmt.Errorf("invalid flavor %q", c.Flavor)
	}
	return nil
}
