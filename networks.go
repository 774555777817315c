package catalyst

import (
	"context"
	"fmt"
	"net/http"
)

type createNetworkRequest struct {
	Populations []Population `json:"populations"`
	Connections []Connection `json:"connections"`
}

// CreateNetwork defines a spiking network on the server and returns it with
// its assigned ID. The network is immutable once created; submit jobs
// against it with [Client.SubmitJob].
//
// At least one population is required, and every connection must reference
// declared population labels. Both are checked locally before the request is
// sent, since a dangling label is detectable here and saves a round trip.
// Deeper validation (sizes, weights, topology parameters) is the server's.
func (c *Client) CreateNetwork(ctx context.Context, populations []Population, connections []Connection) (*Network, error) {
	if err := validateNetworkDefinition(populations, connections); err != nil {
		return nil, err
	}

	if connections == nil {
		connections = []Connection{}
	}
	body := createNetworkRequest{Populations: populations, Connections: connections}

	req, err := c.newRequest(ctx, http.MethodPost, "/v1/networks", body)
	if err != nil {
		return nil, err
	}

	var network Network
	if err := c.do(req, &network); err != nil {
		return nil, err
	}
	return &network, nil
}

func validateNetworkDefinition(populations []Population, connections []Connection) error {
	if len(populations) == 0 {
		return &ValidationError{Field: "populations", Message: "at least one population is required"}
	}

	labels := make(map[string]bool, len(populations))
	for i, p := range populations {
		if p.Label == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("populations[%d].label", i),
				Message: "label is required",
			}
		}
		if labels[p.Label] {
			return &ValidationError{
				Field:   fmt.Sprintf("populations[%d].label", i),
				Message: fmt.Sprintf("duplicate population label %q", p.Label),
			}
		}
		labels[p.Label] = true
	}

	for i, conn := range connections {
		if !labels[conn.Source] {
			return &ValidationError{
				Field:   fmt.Sprintf("connections[%d].source", i),
				Message: fmt.Sprintf("unknown population label %q", conn.Source),
			}
		}
		if !labels[conn.Target] {
			return &ValidationError{
				Field:   fmt.Sprintf("connections[%d].target", i),
				Message: fmt.Sprintf("unknown population label %q", conn.Target),
			}
		}
	}
	return nil
}
