package telemetry

import (
	"os"
	"testing"
)

func TestConfigureEnv(t *testing.T) {
	tests := []struct {
		name        string
		endpoint    string
		apiKey      string
		dataset     string
		wantEnd     string
		wantHeaders string
	}{
		{"defaults", "", "key", "", "https://api.honeycomb.io", "x-honeycomb-team=key,x-honeycomb-dataset=dungeonle"},
		{"dataset override", "", "key", "custom", "https://api.honeycomb.io", "x-honeycomb-team=key,x-honeycomb-dataset=custom"},
		{"endpoint kept", "http://localhost:4318", "", "", "http://localhost:4318", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", tt.endpoint)
			t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
			t.Setenv("HONEYCOMB_DUNGEONLE_API_KEY", tt.apiKey)
			t.Setenv("HONEYCOMB_DUNGEONLE_DATASET", tt.dataset)

			ConfigureEnv("dungeonle")

			if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != tt.wantEnd {
				t.Errorf("endpoint = %q, want %q", got, tt.wantEnd)
			}
			if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != tt.wantHeaders {
				t.Errorf("headers = %q, want %q", got, tt.wantHeaders)
			}
		})
	}
}
