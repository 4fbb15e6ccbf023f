package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by Create
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the scene file (json type only)
}

const builtInGroup = "Built-in Scenes"

var builtInScenes = []SceneInfo{
	{
		ID:          "default",
		DisplayName: "Default Scene",
		Description: "Two spheres on a ground sphere; lighting chosen by light mode",
		Group:       builtInGroup,
		Type:        "builtin",
	},
	{
		ID:          "spheres",
		DisplayName: "Overlapping Spheres",
		Description: "Five tinted, overlapping spheres for the transparency integrator",
		Group:       builtInGroup,
		Type:        "builtin",
	},
	{
		ID:          "single",
		DisplayName: "Single Sphere",
		Description: "White unit sphere lit by one point light",
		Group:       builtInGroup,
		Type:        "builtin",
	},
	{
		ID:          "spheregrid",
		DisplayName: "Sphere Grid",
		Description: "10x10 grid of spheres sweeping hue and lightness",
		Group:       builtInGroup,
		Type:        "builtin",
	},
	{
		ID:          "cone-lights",
		DisplayName: "Cone Lights",
		Description: "Four cone lights of increasing half-angle",
		Group:       builtInGroup,
		Type:        "builtin",
	},
	{
		ID:          "cylinder-lights",
		DisplayName: "Cylinder Lights",
		Description: "Three shafts of light of different radii and tilts",
		Group:       builtInGroup,
		Type:        "builtin",
	},
}

// scenesDirs are the locations searched for JSON scene files
var scenesDirs = []string{"scenes", "../scenes"}

// ListJSONScenes scans the scenes directory and returns discovered JSON scenes
func ListJSONScenes() ([]SceneInfo, error) {
	var scenesDir string
	for _, path := range scenesDirs {
		if _, err := os.Stat(path); err == nil {
			scenesDir = path
			break
		}
	}

	if scenesDir == "" {
		// No scenes directory found, return empty list
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(scenesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		sceneInfo, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Skip unreadable files, keep the rest of the listing usable
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseSceneMetadata reads the name, description and group of a JSON scene file
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	sceneInfo := SceneInfo{
		ID:          filePath,
		DisplayName: titleCase(base),
		Group:       "Scene Files",
		Type:        "json",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return sceneInfo, fmt.Errorf("read scene metadata: %w", err)
	}

	var meta struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Group       string `json:"group"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return sceneInfo, fmt.Errorf("parse scene metadata: %w", err)
	}

	if meta.Name != "" {
		sceneInfo.DisplayName = meta.Name
	}
	sceneInfo.Description = meta.Description
	if meta.Group != "" {
		sceneInfo.Group = meta.Group
	}

	return sceneInfo, nil
}

// ListScenes returns the built-in scenes followed by the discovered JSON scenes
func ListScenes() ([]SceneInfo, error) {
	jsonScenes, err := ListJSONScenes()
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}

	all := make([]SceneInfo, 0, len(builtInScenes)+len(jsonScenes))
	all = append(all, builtInScenes...)
	all = append(all, jsonScenes...)
	return all, nil
}

// Create builds a scene by built-in name, or loads it when name is a .json path.
// mode only affects the default scene.
func Create(name string, mode LightMode) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(mode), nil
	case "spheres":
		return NewSpheresScene(), nil
	case "single":
		return NewSingleSphereScene(), nil
	case "spheregrid":
		return NewSphereGridScene(), nil
	case "cone-lights":
		return NewConeLightScene(), nil
	case "cylinder-lights":
		return NewCylinderLightScene(), nil
	case "":
		return nil, fmt.Errorf("empty scene name")
	}

	if strings.HasSuffix(name, ".json") {
		return Load(name)
	}

	return nil, fmt.Errorf("unknown scene %q", name)
}

// CreateListed builds a scene only when name is an ID returned by ListScenes.
// Any other path is rejected without being opened.
func CreateListed(name string, mode LightMode) (*Scene, error) {
	scenes, err := ListScenes()
	if err != nil {
		return nil, err
	}
	for _, info := range scenes {
		if info.ID == name {
			return Create(name, mode)
		}
	}
	return nil, fmt.Errorf("unknown scene %q", name)
}

// titleCase converts a filename-style string to title case
// e.g., "two-lights" -> "Two Lights"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
