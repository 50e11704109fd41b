package models

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed worlds/default.yaml
var defaultWorld []byte

// DefaultWorld returns the built-in world.
func DefaultWorld() (*World, error) {
	return ParseWorld(defaultWorld)
}

// ParseWorld decodes a YAML world definition. Unknown fields are rejected so
// typos in option keys do not silently turn into always-visible options.
func ParseWorld(data []byte) (*World, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var w World
	if err := dec.Decode(&w); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("world definition is empty")
		}
		return nil, fmt.Errorf("failed to parse world YAML: %w", err)
	}
	return &w, nil
}

// LoadWorld reads a world file. An empty path returns the built-in world.
func LoadWorld(path string) (*World, error) {
	if path == "" {
		return DefaultWorld()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	w, err := ParseWorld(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// ListWorlds returns the YAML files in dir.
func ListWorlds(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var worlds []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			worlds = append(worlds, filepath.Join(dir, entry.Name()))
		}
	}
	return worlds, nil
}

