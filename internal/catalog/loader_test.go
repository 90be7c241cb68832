package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
)

func TestLoadEmbeddedDataset(t *testing.T) {
	ds, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, ds.Categories())
	assert.NotEmpty(t, ds.Codes())
	assert.NotEmpty(t, ds.Agents())

	// Spot-check referential integrity of the shipped data
	code, ok := ds.Code("5610")
	require.True(t, ok)
	assert.Equal(t, "horeca", code.CategoryID)
	assert.Equal(t, 1, ds.AgentCountForCode("5610"))
}

func TestLoadYAMLFile(t *testing.T) {
	content := `
categories:
  - id: horeca
    name: HoReCa
caenCodes:
  - code: "5610"
    title: Restaurante
    category: horeca
agents:
  - id: sintra-ai
    name: SINTRA AI
    caenCode: "5610"
    category: horeca
    type: chatbot
    rating: 4.8
    pricing: { type: freemium, startingPrice: 49, currency: EUR }
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	ds, err := Load(path)
	require.NoError(t, err)
	require.Len(t, ds.Agents(), 1)

	agent := ds.Agents()[0]
	assert.Equal(t, "SINTRA AI", agent.Name)
	require.NotNil(t, agent.Pricing.StartingPrice)
	assert.Equal(t, 49.0, *agent.Pricing.StartingPrice)
}

func TestLoadJSONFile(t *testing.T) {
	content := `{
  "categories": [{"id": "it", "name": "IT"}],
  "caenCodes": [{"code": "6201", "title": "Software", "category": "it"}],
  "agents": [{
    "id": "devmate",
    "name": "DevMate",
    "caenCode": "6201",
    "category": "it",
    "type": "generator",
    "rating": 4.8,
    "pricing": {"type": "free", "currency": "EUR"}
  }]
}`
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	ds, err := Load(path)
	require.NoError(t, err)
	require.Len(t, ds.Agents(), 1)
	assert.Equal(t, "DevMate", ds.Agents()[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidDataset(t *testing.T) {
	// Agent references a code that does not exist
	content := `
categories:
  - id: horeca
    name: HoReCa
caenCodes:
  - code: "5610"
    title: Restaurante
    category: horeca
agents:
  - id: ghost
    name: Ghost
    caenCode: "9999"
    category: horeca
    type: chatbot
    rating: 4.0
    pricing: { type: free, currency: EUR }
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidDataset(err))
}
