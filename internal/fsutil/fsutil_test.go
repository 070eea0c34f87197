package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"titre simple", "Grand entretien", "Grand_entretien"},
		{"caractères interdits", `Qui / quoi : "pourquoi" ?`, "Qui_quoi_pourquoi"},
		{"underscores multiples", "a  -  b", "a_-_b"},
		{"points finaux", "fin...", "fin"},
		{"vide", "   ", "video"},
		{"que des interdits", `///:::`, "video"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeFilename(tc.in); got != tc.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeFilenameLength(t *testing.T) {
	long := strings.Repeat("a", 500)
	if got := SanitizeFilename(long); len(got) != 200 {
		t.Errorf("len = %d, want 200", len(got))
	}
}

func TestSaveTextAtomic(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveTextAtomic(dir, "note", ".txt", []byte("v1"), true)
	if err != nil {
		t.Fatalf("SaveTextAtomic() error = %v", err)
	}
	if want := filepath.Join(dir, "note.txt"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	// overwrite=true : même chemin, contenu remplacé
	path2, err := SaveTextAtomic(dir, "note", ".txt", []byte("v2"), true)
	if err != nil {
		t.Fatalf("SaveTextAtomic() error = %v", err)
	}
	if path2 != path {
		t.Errorf("overwrite devrait réutiliser %q, got %q", path, path2)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "v2" {
		t.Errorf("contenu = %q, want %q", data, "v2")
	}

	// overwrite=false : suffixe de collision
	path3, err := SaveTextAtomic(dir, "note", ".txt", []byte("v3"), false)
	if err != nil {
		t.Fatalf("SaveTextAtomic() error = %v", err)
	}
	if want := filepath.Join(dir, "note_1.txt"); path3 != want {
		t.Errorf("collision path = %q, want %q", path3, want)
	}
}

func TestIsDirEmpty(t *testing.T) {
	dir := t.TempDir()
	empty, err := IsDirEmpty(dir)
	if err != nil {
		t.Fatalf("IsDirEmpty() error = %v", err)
	}
	if !empty {
		t.Error("répertoire neuf devrait être vide")
	}

	if err := os.WriteFile(filepath.Join(dir, "x"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	empty, err = IsDirEmpty(dir)
	if err != nil {
		t.Fatalf("IsDirEmpty() error = %v", err)
	}
	if empty {
		t.Error("répertoire avec un fichier ne devrait pas être vide")
	}
}
