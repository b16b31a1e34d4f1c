package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type checklistFile struct {
	Items []string `yaml:"items"`
}

// ParseChecklistYAML decodes a diagnostic checklist of the form:
//
//	items:
//	  - Тормозные колодки
//	  - Аккумулятор
func ParseChecklistYAML(data []byte) ([]string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("checklist: payload is empty")
	}
	var f checklistFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("checklist: decode: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Items))
	items := make([]string, 0, len(f.Items))
	for _, it := range f.Items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		if _, dup := seen[it]; dup {
			return nil, fmt.Errorf("checklist: duplicate item %q", it)
		}
		seen[it] = struct{}{}
		items = append(items, it)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("checklist: no items")
	}
	return items, nil
}

// LoadChecklist reads the checklist file. An empty path returns nil so the
// caller falls back to the built-in list.
func LoadChecklist(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("checklist: read %s: %w", path, err)
	}
	return ParseChecklistYAML(content)
}
