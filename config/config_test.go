package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	target, ok := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !ok {
		t.Fatal("expected Load to succeed with a default target")
	}
	if target.CompilerPath != "cc" {
		t.Errorf("CompilerPath = %q, want %q", target.CompilerPath, "cc")
	}
}

func TestLoadParsesManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	contents := "compiler-path = \"clang\"\ndefault-vector-width = 4\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	target, ok := Load(path)
	if !ok {
		t.Fatal("expected Load to succeed")
	}
	if target.CompilerPath != "clang" {
		t.Errorf("CompilerPath = %q, want %q", target.CompilerPath, "clang")
	}
	if target.DefaultVecWidth != 4 {
		t.Errorf("DefaultVecWidth = %d, want 4", target.DefaultVecWidth)
	}
}

func TestNegativeVectorWidthIsIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	contents := "default-vector-width = -2\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	target, ok := Load(path)
	if !ok {
		t.Fatal("expected Load to succeed")
	}
	if target.DefaultVecWidth != 0 {
		t.Errorf("DefaultVecWidth = %d, want 0 after rejecting a negative width", target.DefaultVecWidth)
	}
}
