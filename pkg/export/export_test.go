package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/productionplan/core/model"
)

var entries = []model.PlanEntry{
	{Name: "windpark1", P: 90},
	{Name: "windpark2", P: 21.6},
	{Name: "gasfiredbig1", P: 368.4},
	{Name: "tj1", P: 0},
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, entries))
	assert.JSONEq(t, `[
		{"name":"windpark1","p":90},
		{"name":"windpark2","p":21.6},
		{"name":"gasfiredbig1","p":368.4},
		{"name":"tj1","p":0}
	]`, buf.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, entries))
	want := "name,p\nwindpark1,90.0\nwindpark2,21.6\ngasfiredbig1,368.4\ntj1,0.0\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteChartHTML(t *testing.T) {
	plan := model.Plan{
		Load:      480,
		Committed: 480,
		Allocations: []model.Allocation{
			{Unit: model.Unit{Name: "windpark1", Kind: model.KindWindTurbine, PMax: 90}, Output: 90},
			{Unit: model.Unit{Name: "gasfiredbig1", Kind: model.KindGasFired, PMax: 460}, Output: 390},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteChartHTML(&buf, plan))
	html := buf.String()
	assert.True(t, strings.Contains(html, "<html"), "expected an html document")
	assert.Contains(t, html, "gasfiredbig1")
	assert.Contains(t, html, "Production plan")
}
