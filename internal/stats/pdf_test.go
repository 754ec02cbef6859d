package stats

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.pdf")
	if err := WritePDF(path, sampleState()); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected PDF header, got %q", data[:min(len(data), 8)])
	}
}

func TestWritePDFRequiresAnalysis(t *testing.T) {
	state := sampleState()
	state.FinalAnalysis = nil
	err := WritePDF(filepath.Join(t.TempDir(), "report.pdf"), state)
	if !errors.Is(err, ErrNoAnalysis) {
		t.Fatalf("expected ErrNoAnalysis, got %v", err)
	}
}
