package dyespheres

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates an hclog logger writing to w (stderr when nil).
// DYESPHERES_JSON_LOG=1 switches to JSON lines.
func NewLogger(name, level string, w io.Writer) hclog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if level == "" {
		level = LogLevel
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: os.Getenv(EnvPrefix+"_JSON_LOG") == "1",
		Output:     w,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}
