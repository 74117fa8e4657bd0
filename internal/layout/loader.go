package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML layout and validates it.
// A file without an id takes its base name as the id.
func LoadFile(path string, crystalsNeeded int) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("layout: failed to read %s: %w", path, err)
	}

	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("layout: failed to parse %s: %w", path, err)
	}
	if l.ID == "" {
		l.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if l.Title == "" {
		l.Title = l.ID
	}
	if err := l.Validate(crystalsNeeded); err != nil {
		return Layout{}, fmt.Errorf("layout: %s: %w", path, err)
	}
	return l, nil
}

// LoadDir registers every *.yaml / *.yml layout in dir.
// A missing directory is not an error. Invalid files are skipped and
// reported together in the returned error; valid ones are still registered.
func LoadDir(dir string, crystalsNeeded int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("layout: cannot read %s: %w", dir, err)
	}

	var ids []string
	var problems []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		l, err := LoadFile(filepath.Join(dir, e.Name()), crystalsNeeded)
		if err != nil {
			problems = append(problems, err.Error())
			continue
		}
		Register(l)
		ids = append(ids, l.ID)
	}

	if len(problems) > 0 {
		return ids, fmt.Errorf("layout: %d invalid file(s): %s", len(problems), strings.Join(problems, "; "))
	}
	return ids, nil
}
