package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	var sb strings.Builder

	err := Write(&sb, []string{"kP9#mQ2$", "vB7!nR4%"})
	if err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}

	want := "Generated Secure Passwords\n" +
		"==============================\n" +
		"\n" +
		"Password 1: kP9#mQ2$\n" +
		"Password 2: vB7!nR4%\n"

	if sb.String() != want {
		t.Errorf("Write() output = %q, want %q", sb.String(), want)
	}
}

func TestWrite_EmptyBatch(t *testing.T) {
	var sb strings.Builder

	if err := Write(&sb, nil); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}

	if !strings.HasPrefix(sb.String(), "Generated Secure Passwords\n") {
		t.Errorf("Write() missing header, got %q", sb.String())
	}
	if strings.Contains(sb.String(), "Password ") {
		t.Errorf("Write() of empty batch should contain no password lines, got %q", sb.String())
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwords.txt")

	if err := WriteFile(path, []string{"kP9#mQ2$"}); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export file: %v", err)
	}
	if !strings.Contains(string(data), "Password 1: kP9#mQ2$") {
		t.Errorf("export file missing password line, got %q", data)
	}
}

func TestWriteFile_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "passwords.txt")

	if err := WriteFile(path, []string{"kP9#mQ2$"}); err == nil {
		t.Fatal("WriteFile() to a missing directory should fail")
	}
}
