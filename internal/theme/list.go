package theme

import (
	"AdminDeck/internal/paths"
	"os"
	"path/filepath"
	"strings"
)

// List returns a list of available themes with their metadata.
func List() ([]Metadata, error) {
	themesDir := paths.GetThemesDir()
	entries, err := os.ReadDir(themesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No themes directory means only the built-in default
		}
		return nil, err
	}

	var themes []Metadata
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), FileExt) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), FileExt)
		meta, _ := getThemeMetadata(filepath.Join(themesDir, entry.Name()))
		if meta.Name == "" {
			meta.Name = name
		}
		themes = append(themes, meta)
	}
	return themes, nil
}

func getThemeMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, err
	}
	f, err := Parse(data)
	if err != nil {
		return Metadata{}, err
	}
	return f.Meta, nil
}
