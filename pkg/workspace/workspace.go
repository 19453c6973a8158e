// Package workspace provides embedded canvas presets.
package workspace

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// DefaultName is the name of the preset used when none is given.
const DefaultName = "default"

//go:embed workspaces.json
var workspaces []byte

// Workspace represents our drawing area.
type Workspace struct {
	// Width and Height are canvas size in pixels.
	Width, Height int

	Name        string
	Description string
}

func decodeWorkspaces() ([]Workspace, error) {
	var result []Workspace
	if err := json.Unmarshal(workspaces, &result); err != nil {
		return nil, fmt.Errorf("unable to decode workspaces: %w", err)
	}

	return result, nil
}

// All returns every known workspace.
func All() ([]Workspace, error) {
	return decodeWorkspaces()
}

// Get returns workspace called name.
func Get(name string) (*Workspace, error) {
	workspaces, err := decodeWorkspaces()
	if err != nil {
		return nil, err
	}

	for _, workspace := range workspaces {
		if workspace.Name == name {
			if workspace.Width <= 0 || workspace.Height <= 0 {
				return nil, fmt.Errorf("workspace %s has size %dx%d: %w", name, workspace.Width, workspace.Height, ErrInvalidSize)
			}

			return &workspace, nil
		}
	}

	return nil, fmt.Errorf("workspace %s: %w", name, ErrNotFound)
}
