package icons

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Placeholder is stored as the icon name when no candidate file matches.
const Placeholder = "PLACEHOLDER"

// specificMappings handles wish names whose icon filenames don't follow the
// generated patterns.
var specificMappings = map[string]string{
	"season_traveler":      "seasoned_traveler.png",
	"fashion_phenomenon":   "w_lifetime_stylist.png",
	"paranormal_profiteer": "w_lifetime_ghosthunter.png",
	"nectar_making":        "nectar_making.png",
}

// Resolver locates icon files for wish names by fuzzy filename matching
// against a directory of .png files.
type Resolver struct {
	dir string
}

func NewResolver(dir string) *Resolver {
	return &Resolver{dir: dir}
}

// Normalize lowercases a wish name and rewrites it into the underscore form
// used by icon filenames: apostrophes, quotes, commas and colons are
// stripped; hyphens and spaces become underscores; runs of underscores
// collapse to one.
func Normalize(name string) string {
	clean := strings.ToLower(name)

	clean = strings.ReplaceAll(clean, "'", "")
	clean = strings.ReplaceAll(clean, `"`, "")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, ":", "")
	clean = strings.ReplaceAll(clean, "-", "_")
	clean = strings.ReplaceAll(clean, " ", "_")

	for strings.Contains(clean, "__") {
		clean = strings.ReplaceAll(clean, "__", "_")
	}

	return clean
}

// Resolve returns the matching icon filename for a wish name, or Placeholder
// when nothing matches. A missing or unreadable icon directory is a valid
// state and also yields Placeholder.
//
// Matching priority, first hit wins:
//  1. explicit mapping for known irregular names
//  2. <name>.png, w_lifetime_<name>.png, w_<name>.png
//  3. any name part longer than 3 chars appearing in a candidate's base name
func (r *Resolver) Resolve(name string) string {
	candidates := r.candidates()
	if len(candidates) == 0 {
		return Placeholder
	}

	present := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		present[c] = true
	}

	clean := Normalize(name)

	if mapped, ok := specificMappings[clean]; ok && present[mapped] {
		return mapped
	}

	patterns := []string{
		clean + ".png",
		"w_lifetime_" + clean + ".png",
		"w_" + clean + ".png",
	}
	for _, pattern := range patterns {
		if present[pattern] {
			return pattern
		}
	}

	parts := strings.Split(clean, "_")
	for _, candidate := range candidates {
		base := strings.TrimSuffix(candidate, ".png")
		for _, part := range parts {
			if len(part) > 3 && strings.Contains(base, part) {
				return candidate
			}
		}
	}

	return Placeholder
}

// candidates snapshots the .png filenames in the icon directory, sorted
// lexicographically so substring matching is deterministic across platforms.
func (r *Resolver) candidates() []string {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == ".png" {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names
}
