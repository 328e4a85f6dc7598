/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package file

import (
	"context"
	"fmt"
	"os"

	"github.com/orien/lambdaroo/internal/config"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file read when none is specified
const DefaultConfigFile = "lambdaroo.yaml"

// Ensure Provider satisfies the configuration provider interface
var _ config.Provider = (*Provider)(nil)

// Provider implements config.Provider by reading from a YAML file
type Provider struct {
	filename  string
	rawConfig *Config
}

// NewProvider creates a new file-based Provider for the given filename
func NewProvider(filename string) *Provider {
	return &Provider{
		filename: filename,
	}
}

// NewDefaultProvider creates a Provider reading the default configuration file
func NewDefaultProvider() *Provider {
	return NewProvider(DefaultConfigFile)
}

// Load loads the deployment configuration from the file. A missing file is
// not an error: flags alone can describe a full deployment, so Load returns
// an empty configuration for the flag layer to fill in.
func (fp *Provider) Load(ctx context.Context) (*config.Config, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	cfg := &config.Config{
		Project: fp.rawConfig.Project,
		Region:  fp.rawConfig.Region,
		Tags:    copyStringMap(fp.rawConfig.Tags),
	}

	if raw := fp.rawConfig.Stack; raw != nil {
		cfg.Stack = config.StackConfig{
			Name:         raw.Name,
			Template:     raw.Template,
			Parameters:   copyStringMap(raw.Parameters),
			Tags:         copyStringMap(raw.Tags),
			Capabilities: append([]string(nil), raw.Capabilities...),
		}
	}

	if raw := fp.rawConfig.Function; raw != nil {
		cfg.Function = config.FunctionConfig{
			Dir:     raw.Dir,
			Archive: raw.Archive,
			Bucket:  raw.Bucket,
			Key:     raw.Key,
		}
	}

	if raw := fp.rawConfig.Replication; raw != nil {
		cfg.Replication = config.ReplicationConfig{
			SourceBucket:      raw.SourceBucket,
			DestinationBucket: raw.DestinationBucket,
			TestFile:          raw.TestFile,
		}
	}

	return cfg, nil
}

// ensureLoaded parses the file on first use
func (fp *Provider) ensureLoaded() error {
	if fp.rawConfig != nil {
		return nil
	}

	data, err := os.ReadFile(fp.filename)
	if err != nil {
		if os.IsNotExist(err) {
			fp.rawConfig = &Config{}
			return nil
		}
		return fmt.Errorf("failed to read configuration file %s: %w", fp.filename, err)
	}

	raw := &Config{}
	if err := yaml.Unmarshal(data, raw); err != nil {
		return fmt.Errorf("failed to parse configuration file %s: %w", fp.filename, err)
	}

	fp.rawConfig = raw
	return nil
}

// copyStringMap returns an independent copy of a string map
func copyStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	result := make(map[string]string, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
