package dyespheres

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("dyespheres", "warn", &buf)
	log.Info("hidden")
	log.Warn("skipping record", "id", "5729")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN]  dyespheres: skipping record: id=5729")
}

func TestNewLoggerJSON(t *testing.T) {
	t.Setenv("DYESPHERES_JSON_LOG", "1")
	var buf bytes.Buffer
	NewLogger("dyespheres", "", &buf).Info("found records", "count", 3)
	assert.Contains(t, buf.String(), `"@message":"found records"`)
	assert.Contains(t, buf.String(), `"count":3`)
}
