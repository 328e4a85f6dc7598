/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package file contains types and structures specific to the file-based
// configuration provider. These types represent the raw YAML structure of a
// lambdaroo.yaml file.
package file

// Config represents the raw YAML configuration file structure
type Config struct {
	Project string            `yaml:"project"`
	Region  string            `yaml:"region"`
	Tags    map[string]string `yaml:"tags"`

	Stack       *Stack       `yaml:"stack"`
	Function    *Function    `yaml:"function"`
	Replication *Replication `yaml:"replication"`
}

// Stack represents stack configuration as it appears in YAML
type Stack struct {
	Name         string            `yaml:"name"`
	Template     string            `yaml:"template"`
	Parameters   map[string]string `yaml:"parameters"`
	Tags         map[string]string `yaml:"tags"`
	Capabilities []string          `yaml:"capabilities"`
}

// Function represents function packaging configuration as it appears in YAML
type Function struct {
	Dir     string `yaml:"dir"`
	Archive string `yaml:"archive"`
	Bucket  string `yaml:"bucket"`
	Key     string `yaml:"key"`
}

// Replication represents the replication bucket pair as it appears in YAML
type Replication struct {
	SourceBucket      string `yaml:"source_bucket"`
	DestinationBucket string `yaml:"destination_bucket"`
	TestFile          string `yaml:"test_file"`
}
