package catalyst_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
)

const sampleNetworkYAML = `populations:
  - label: in
    size: 100
    params:
      threshold: 1000
  - label: out
    size: 10
connections:
  - source: in
    target: out
    topology: random_sparse
    weight: 500
    p: 0.1
`

// TestParseNetworkFile verifies YAML definitions round into the same shapes
// CreateNetwork takes.
func TestParseNetworkFile(t *testing.T) {
	def, err := catalyst.ParseNetworkFile(strings.NewReader(sampleNetworkYAML))
	require.NoError(t, err)

	require.Len(t, def.Populations, 2)
	assert.Equal(t, "in", def.Populations[0].Label)
	assert.Equal(t, 100, def.Populations[0].Size)
	assert.InDelta(t, 1000, def.Populations[0].Params["threshold"], 1e-9)

	require.Len(t, def.Connections, 1)
	conn := def.Connections[0]
	assert.Equal(t, catalyst.TopologyRandomSparse, conn.Topology)
	assert.InDelta(t, 0.1, swag.Float64Value(conn.P), 1e-9)
}

// TestParseNetworkFile_UnknownField verifies typos in definitions are
// rejected rather than silently dropped.
func TestParseNetworkFile_UnknownField(t *testing.T) {
	_, err := catalyst.ParseNetworkFile(strings.NewReader(`populations:
  - label: in
    size: 10
    sized: 20
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sized")
}

// TestParseNetworkFile_Validation verifies the parsed definition goes
// through the same local checks as CreateNetwork.
func TestParseNetworkFile_Validation(t *testing.T) {
	_, err := catalyst.ParseNetworkFile(strings.NewReader(`populations:
  - label: in
    size: 10
connections:
  - source: in
    target: ghost
    weight: 1
`))

	var valErr *catalyst.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "connections[0].target", valErr.Field)
}

// TestLoadNetworkFile reads a definition from disk.
func TestLoadNetworkFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleNetworkYAML), 0o644))

	def, err := catalyst.LoadNetworkFile(path)
	require.NoError(t, err)
	assert.Len(t, def.Populations, 2)

	_, err = catalyst.LoadNetworkFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// TestCreateNetworkFromFile wires the loader into the create call.
func TestCreateNetworkFromFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/networks", r.URL.Path)

		var body map[string]interface{}
		mustDecode(r, &body)
		pops, ok := body["populations"].([]interface{})
		require.True(t, ok)
		assert.Len(t, pops, 2)

		mustEncode(w, map[string]interface{}{"network_id": "net_yaml", "total_neurons": 110})
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleNetworkYAML), 0o644))

	client := newTestClient(server.URL)
	network, err := client.CreateNetworkFromFile(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "net_yaml", network.NetworkID)
}
