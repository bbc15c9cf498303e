package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitStdoutExporter(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	var buf bytes.Buffer
	ctx := context.Background()

	shutdown, err := Init(ctx, "hybridbfs-test", "0.0.0", "", &buf)
	require.NoError(t, err)

	_, span := Tracer("test").Start(ctx, "traverse")
	span.End()
	require.NoError(t, shutdown(ctx))

	assert.Contains(t, buf.String(), `"Name": "traverse"`)
}
