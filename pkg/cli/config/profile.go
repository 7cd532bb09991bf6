package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// ProfileData is the content of a TOML profile. Values only apply to
// flags that were not set on the command line or in the environment.
type ProfileData struct {
	API struct {
		BaseURL string `toml:"base_url"`
		Timeout string `toml:"timeout"`
	} `toml:"api"`

	View struct {
		PageSize    int    `toml:"page_size"`
		Timezone    string `toml:"timezone"`
		ScopedStats bool   `toml:"scoped_stats"`
	} `toml:"view"`

	Export struct {
		Dir       string `toml:"dir"`
		GCSBucket string `toml:"gcs_bucket"`
	} `toml:"export"`
}

// Profile holds the CLI flag pointing at the profile file
type Profile struct {
	path string
}

// Flags returns CLI flags for the profile file
func (p *Profile) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to a TOML profile",
			Sources:     cli.EnvVars("CHATDESK_CONFIG"),
			Destination: &p.path,
		},
	}
}

// Path returns the configured profile path
func (p *Profile) Path() string {
	return p.path
}

// Load reads the profile. Without a configured path it returns an empty profile.
func (p *Profile) Load() (*ProfileData, error) {
	if p.path == "" {
		return &ProfileData{}, nil
	}
	return LoadProfile(p.path)
}

// LoadProfile reads and parses the TOML profile at path
func LoadProfile(path string) (*ProfileData, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read profile", goerr.V(ConfigPathKey, path))
	}

	var profile ProfileData
	if err := toml.Unmarshal(data, &profile); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse profile",
			goerr.V(ConfigPathKey, path), goerr.V("error", err.Error()))
	}

	return &profile, nil
}
