package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/activityviz/pkg/activity"
)

func TestGenerateSchema_Visualization(t *testing.T) {
	t.Parallel()

	schema := generateSchema("Activity Visualization", activity.Visualization{})

	assert.Equal(t, "object", schema.Type)
	assert.ElementsMatch(t, []string{"year", "transform", "grid", "trends", "summary"}, schema.Required)

	// Text-marshaled enums are strings on the wire.
	assert.Equal(t, "string", schema.Properties["transform"].Type)
	assert.Equal(t, "#/definitions/CalendarGrid", schema.Properties["grid"].Ref)

	grid := schema.Definitions["CalendarGrid"]
	require.NotNil(t, grid)

	cells := grid.Properties["cells"]
	require.NotNil(t, cells)
	assert.Equal(t, "array", cells.Type)
	assert.Equal(t, "array", cells.Items.Type)
	assert.Equal(t, "#/definitions/Cell", cells.Items.Items.Ref)
}

func TestRun_WritesSchemas(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "schemas")
	require.NoError(t, run(dir))

	for name := range models {
		data, err := os.ReadFile(filepath.Join(dir, name+".json"))
		require.NoError(t, err)

		var decoded map[string]any

		require.NoError(t, json.Unmarshal(data, &decoded), name)
		assert.Equal(t, schemaDialect, decoded["$schema"])
	}
}
