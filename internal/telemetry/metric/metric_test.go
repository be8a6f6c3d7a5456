package metric

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	if r.TokensGenerated == nil || r.Verifications == nil || r.OperationDuration == nil {
		t.Fatal("NewRegistry() left metrics nil")
	}
	if r.Gatherer() == nil {
		t.Fatal("Gatherer() returned nil")
	}
}

func TestRegistry_ObserveGenerated(t *testing.T) {
	r := NewRegistry()

	r.ObserveGenerated(1)
	r.ObserveGenerated(5)

	if got := testutil.ToFloat64(r.TokensGenerated); got != 6 {
		t.Errorf("tokens_generated_total = %v, want 6", got)
	}
}

func TestRegistry_ObserveVerification(t *testing.T) {
	r := NewRegistry()

	r.ObserveVerification(true, nil)
	r.ObserveVerification(true, nil)
	r.ObserveVerification(false, nil)
	r.ObserveVerification(false, errors.New("bad format"))

	tests := []struct {
		result string
		want   float64
	}{
		{ResultValid, 2},
		{ResultInvalid, 1},
		{ResultError, 1},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(r.Verifications.WithLabelValues(tt.result)); got != tt.want {
			t.Errorf("verifications_total{result=%q} = %v, want %v", tt.result, got, tt.want)
		}
	}
}

func TestRegistry_Time(t *testing.T) {
	r := NewRegistry()
	r.Time("generate", time.Now().Add(-time.Millisecond))

	if n := testutil.CollectAndCount(r.OperationDuration); n != 1 {
		t.Errorf("operation_duration_seconds series = %d, want 1", n)
	}
}

func TestRegistry_WriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.SetBuildInfo("v1.2.3", "abc123")
	r.ObserveGenerated(3)
	r.ObserveVerification(true, nil)

	path := filepath.Join(t.TempDir(), "surveyauth.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"surveyauth_tokens_generated_total 3",
		`surveyauth_verifications_total{result="valid"} 1`,
		`surveyauth_build_info{commit="abc123",version="v1.2.3"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("textfile missing %q", want)
		}
	}
}

func TestRegistry_WriteTextfile_BadPath(t *testing.T) {
	r := NewRegistry()
	if err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom")); err == nil {
		t.Error("WriteTextfile() should fail for a missing directory")
	}
}
