package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitlab/sitp-routing/dataset"
)

const jsonDataset = `{
  "stations": {
    "A": {"lat": 4.60, "lon": -74.07},
    "B": {"lat": 4.61, "lon": -74.07}
  },
  "links": [
    ["A", "B", "1", 5]
  ],
  "transfer_penalty": 3
}`

const yamlDataset = `stations:
  A: {lat: 4.60, lon: -74.07}
  B: {lat: 4.61, lon: -74.07}
links:
  - [A, B, "1", 5]
transfer_penalty: 3
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadFileJSON(t *testing.T) {
	d, err := dataset.LoadFile(writeTemp(t, "net.json", jsonDataset))
	require.NoError(t, err)
	assert.Len(t, d.Stations, 2)
	require.Len(t, d.Links, 1)
	assert.Equal(t, dataset.Link{From: "A", To: "B", Line: "1", Time: 5}, d.Links[0])
	assert.Equal(t, 3.0, d.TransferPenalty)
}

func TestLoadFileYAML(t *testing.T) {
	d, err := dataset.LoadFile(writeTemp(t, "net.yml", yamlDataset))
	require.NoError(t, err)
	require.Len(t, d.Links, 1)
	assert.Equal(t, dataset.Link{From: "A", To: "B", Line: "1", Time: 5}, d.Links[0])
}

func TestLoadFileBadLink(t *testing.T) {
	_, err := dataset.LoadFile(writeTemp(t, "net.json",
		`{"stations": {"A": {"lat": 0, "lon": 0}}, "links": [["A", "B", "1"]]}`))
	assert.ErrorContains(t, err, "4 elements")

	_, err = dataset.LoadFile(writeTemp(t, "net.yml",
		"stations:\n  A: {lat: 0, lon: 0}\nlinks:\n  - [A, B]\n"))
	assert.ErrorContains(t, err, "sequence")
}

func TestValidate(t *testing.T) {
	require.NoError(t, dataset.Default().Validate())

	d := dataset.Default()
	d.TransferPenalty = -1
	assert.Error(t, d.Validate())

	d = dataset.Default()
	d.Stations["bad"] = dataset.Station{Lat: 123, Lon: 0}
	assert.Error(t, d.Validate())

	d = dataset.Default()
	d.Links = append(d.Links, dataset.Link{From: "A", To: "B", Line: "", Time: 1})
	assert.ErrorContains(t, d.Validate(), "non-empty")
}

func TestLinkRoundTrip(t *testing.T) {
	l := dataset.Link{From: "A", To: "B", Line: "1", Time: 5.5}
	b, err := l.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `["A", "B", "1", 5.5]`, string(b))
}

func TestNewPath(t *testing.T) {
	file := writeTemp(t, "net.json", jsonDataset)
	p, err := dataset.NewPath(file)
	require.NoError(t, err)
	assert.Equal(t, file, p.File)
	assert.Equal(t, file, p.String())

	p, err = dataset.NewPath("transit.bogota")
	require.NoError(t, err)
	assert.Equal(t, "transit", p.DB)
	assert.Equal(t, "bogota", p.Coll)
	assert.Equal(t, "transit.bogota", p.String())

	p, err = dataset.NewPath("")
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = dataset.NewPath("not.a.valid.locator")
	assert.Error(t, err)
}

func TestLoadFallback(t *testing.T) {
	d, err := dataset.Load(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, dataset.Default(), d)

	// a Mongo locator without a URI must fail early
	_, err = dataset.Load(context.Background(), "transit.bogota", "")
	assert.ErrorContains(t, err, "mongo_uri")
}
