//go:build integration

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gostonefire/bottin/internal/conf"
	"github.com/gostonefire/bottin/internal/hash"
)

// testFilePath returns the path to a test directory file
func testFilePath(t *testing.T, name string) string {
	t.Helper()
	// Go up two directories from cmd/bottin to repo root
	path := filepath.Join("..", "..", "testdata", name)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("test file not found: %s", path)
	}
	return path
}

// resetFlags puts every global flag back to its default
func resetFlags() {
	fileName = "Bottin.txt"
	capacity = conf.DefaultCapacity
	hashAlgorithm = hash.Default
	charset = "utf-8"
	verbose = false
	quiet = false
	jsonOut = false
	statsDistribution = false
	lookupName = ""
	lookupPhone = ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}
