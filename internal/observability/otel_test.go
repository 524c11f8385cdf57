package observability

import "testing"

func TestParseHeaderList(t *testing.T) {
	headers := parseHeaderList("x-api-key=abc, x-tenant = t1 ,broken,=novalue,nokey=")
	if len(headers) != 2 {
		t.Fatalf("expected 2 headers, got %d (%v)", len(headers), headers)
	}
	if headers["x-api-key"] != "abc" || headers["x-tenant"] != "t1" {
		t.Fatalf("unexpected headers: %v", headers)
	}
	if parseHeaderList("") != nil {
		t.Fatalf("expected nil for empty input")
	}
}

func TestOtelSettingsFromEnv(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "yes")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", " collector:4318 ")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "true")
	t.Setenv("OTEL_SAMPLER_RATIO", "2.5")

	set := otelSettingsFromEnv()
	if !set.enabled || !set.insecure {
		t.Fatalf("expected enabled and insecure, got %+v", set)
	}
	if set.endpoint != "collector:4318" {
		t.Fatalf("expected trimmed endpoint, got %q", set.endpoint)
	}
	// Out-of-range ratios clamp rather than error.
	if set.sampleRatio != 1 {
		t.Fatalf("expected ratio clamped to 1, got %v", set.sampleRatio)
	}

	t.Setenv("OTEL_SAMPLER_RATIO", "not-a-number")
	if got := otelSettingsFromEnv().sampleRatio; got != 0.1 {
		t.Fatalf("expected default ratio 0.1, got %v", got)
	}

	t.Setenv("OTEL_ENABLED", "")
	if otelSettingsFromEnv().enabled {
		t.Fatalf("expected disabled when unset")
	}
}
