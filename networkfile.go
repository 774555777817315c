package catalyst

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// NetworkDefinition is a network described in a YAML file, the on-disk
// counterpart of the arguments to [Client.CreateNetwork]:
//
//	populations:
//	  - label: in
//	    size: 100
//	    params:
//	      threshold: 1000
//	  - label: out
//	    size: 10
//	connections:
//	  - source: in
//	    target: out
//	    topology: random_sparse
//	    weight: 500
//	    p: 0.1
type NetworkDefinition struct {
	Populations []Population `yaml:"populations" json:"populations"`
	Connections []Connection `yaml:"connections,omitempty" json:"connections,omitempty"`
}

// Validate applies the same local checks [Client.CreateNetwork] performs:
// at least one population, unique labels, connection endpoints that name
// declared populations.
func (d *NetworkDefinition) Validate() error {
	return validateNetworkDefinition(d.Populations, d.Connections)
}

// ParseNetworkFile reads a YAML network definition from r and validates it.
func ParseNetworkFile(r io.Reader) (*NetworkDefinition, error) {
	var def NetworkDefinition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to parse network definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadNetworkFile reads a YAML network definition from path.
func LoadNetworkFile(path string) (*NetworkDefinition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open network definition: %w", err)
	}
	defer f.Close()
	return ParseNetworkFile(f)
}

// CreateNetworkFromFile loads a YAML network definition and creates it on
// the server.
func (c *Client) CreateNetworkFromFile(ctx context.Context, path string) (*Network, error) {
	def, err := LoadNetworkFile(path)
	if err != nil {
		return nil, err
	}
	return c.CreateNetwork(ctx, def.Populations, def.Connections)
}
