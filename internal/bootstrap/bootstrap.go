package bootstrap

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/patrickprogramme/quotescribe/internal/fsutil"
)

// EnsureConfigPresent copie un fichier embarqué (assetPath dans fsys) vers dstPath
// si dstPath n'existe pas encore.
// Comportement : idempotent, ne remplace jamais un fichier existant.
func EnsureConfigPresent(dstPath string, fsys fs.FS, assetPath string) error {
	parent := filepath.Dir(dstPath)
	if parent == "" {
		parent = "."
	}
	if st, err := os.Stat(parent); err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return fmt.Errorf("échec création répertoire parent %s: %w", parent, err)
			}
		} else {
			return fmt.Errorf("échec test parent %s: %w", parent, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}

	// si le fichier existe déjà -> ne rien faire
	if _, err := os.Stat(dstPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("échec stat fichier cible %s: %w", dstPath, err)
	}

	if err := copyEmbedded(fsys, assetPath, dstPath); err != nil {
		return err
	}

	fmt.Printf("info: created default config at %s\n", dstPath)
	return nil
}

// EnsureTemplatesPresent s'assure que les templates listés existent sur disque.
//
// - tplDir  : dossier destination sur disque (ex: "./templates")
// - fsys    : embed.FS contenant les ressources embarquées
// - srcFiles: liste explicite de chemins DANS fsys (ex: "templates/quotes_report.md.tmpl")
//
// Comportement :
//  1. Si tplDir est absent ou vide -> copie TOUS les fichiers listés.
//  2. Sinon -> ne copie que les fichiers manquants.
//  3. NE REMPLACE JAMAIS les fichiers existants (l'utilisateur peut les personnaliser).
func EnsureTemplatesPresent(tplDir string, fsys fs.FS, srcFiles []string) error {
	parent := filepath.Dir(tplDir)
	if parent == "" || parent == "." {
		parent = "."
	}
	if st, err := os.Stat(parent); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("le répertoire parent n'existe pas : %s", parent)
		}
		return fmt.Errorf("échec lors du test du répertoire parent %s : %w", parent, err)
	} else if !st.IsDir() {
		return fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}

	copyAll := false
	if _, err := os.Stat(tplDir); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("échec lors du test du répertoire de templates %s : %w", tplDir, err)
		}
		if err := os.MkdirAll(tplDir, 0o755); err != nil {
			return fmt.Errorf("échec de création du répertoire de templates %s : %w", tplDir, err)
		}
		copyAll = true
	} else {
		empty, err := fsutil.IsDirEmpty(tplDir)
		if err != nil {
			return fmt.Errorf("échec lors de la vérification du répertoire %s : %w", tplDir, err)
		}
		copyAll = empty
	}

	for _, src := range srcFiles {
		dest := filepath.Join(tplDir, filepath.Base(src))
		if !copyAll {
			if _, err := os.Stat(dest); err == nil {
				// le fichier existe déjà -> on saute
				continue
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("échec lors du test du fichier %s : %w", dest, err)
			}
		}
		if err := copyEmbedded(fsys, src, dest); err != nil {
			return err
		}
	}
	return nil
}

// copyEmbedded lit un fichier dans fsys et l'écrit atomiquement sur disque.
func copyEmbedded(fsys fs.FS, src, dest string) error {
	data, err := fs.ReadFile(fsys, filepath.ToSlash(src))
	if err != nil {
		return fmt.Errorf("lecture de la ressource embarquée %s impossible : %w", src, err)
	}
	if err := fsutil.WriteFileAtomic(dest, data, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier %s : %w", dest, err)
	}
	return nil
}
