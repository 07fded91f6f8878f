package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	v := Get()
	if v == "" {
		t.Fatal("expected non-empty version")
	}
	if strings.TrimSpace(v) != v {
		t.Errorf("version %q should be trimmed", v)
	}
}

func TestFull(t *testing.T) {
	full := Full()
	if !strings.HasPrefix(full, Get()+" (") {
		t.Errorf("expected %q to start with the version, got %q", Get(), full)
	}
	if !strings.Contains(full, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("expected platform in %q", full)
	}
}
