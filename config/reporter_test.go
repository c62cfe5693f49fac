package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	source := filepath.Join(dir, "templates.yaml")
	if err := os.WriteFile(source, []byte("t1: {}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.StoreCopy("source/templates.yaml", source); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}
	// copy is taken at the time of a call
	if err := os.WriteFile(source, []byte("changed"), 0644); err != nil {
		t.Fatal(err)
	}

	logFile := filepath.Join(dir, "final.log")
	r.Store("final.log", logFile)
	if err := os.WriteFile(logFile, []byte("log line"), 0644); err != nil {
		t.Fatal(err)
	}

	r.StoreData("stylesheet.css", []byte("table.t1 {}"))
	r.StoreData("stylesheet.css", []byte("table.t2 {}"))
	r.Store("missing.log", filepath.Join(dir, "nope.log"))

	if err := r.StoreCopy("dir", dir); err == nil {
		t.Error("StoreCopy() of directory succeeded")
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	files := readArchive(t, r.Name())
	if files["source/templates.yaml"] != "t1: {}\n" {
		t.Errorf("source = %q", files["source/templates.yaml"])
	}
	if files["final.log"] != "log line" {
		t.Errorf("final.log = %q", files["final.log"])
	}
	if files["stylesheet.css"] != "table.t1 {}" {
		t.Errorf("stylesheet.css = %q", files["stylesheet.css"])
	}
	var versioned int
	for name := range files {
		if strings.HasPrefix(name, "stylesheet.css-") {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("expected one versioned stylesheet, archive has %v", files)
	}
	if _, ok := files["missing.log"]; ok {
		t.Error("absent file put into archive")
	}
	if !strings.Contains(files["MANIFEST"], "missing.log") {
		t.Errorf("MANIFEST = %q", files["MANIFEST"])
	}
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Error("nil report has a name")
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
