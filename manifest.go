package scaffold

import (
	"embed"
	"fmt"
	"path"
	"strings"
)

//go:embed skeleton
var skeleton embed.FS

const skeletonRoot = "skeleton"

var dashboardDirs = []string{
	"src/components",
	"src/data",
	"src/utils",
}

var dashboardFiles = []string{
	"tailwind.config.js",
	"src/index.css",
	"src/data/data.js",
	"src/utils/utils.js",
	"src/components/ActionDropdown.jsx",
	"src/components/ClusterStatsCard.jsx",
	"src/components/ClusterTable.jsx",
	"src/components/Navigation.jsx",
	"src/components/StatusFilter.jsx",
	"src/App.jsx",
}

var dashboardFooter = []string{
	"",
	"Project structure updated successfully!",
	"",
	"You can now run the application with:",
	"npm run dev",
}

// DashboardManifest returns the built-in cluster dashboard layout. Each call
// returns a fresh slice so callers may filter it freely.
func DashboardManifest() (*Manifest, error) {
	m := &Manifest{Name: "dashboard", Footer: append([]string(nil), dashboardFooter...)}
	for _, d := range dashboardDirs {
		m.Entries = append(m.Entries, Dir(d))
	}
	for _, f := range dashboardFiles {
		data, err := skeleton.ReadFile(path.Join(skeletonRoot, f))
		if err != nil {
			return nil, fmt.Errorf("built-in payload missing %s: %w", f, err)
		}
		m.Entries = append(m.Entries, File(f, string(data)))
	}
	return m, nil
}

// Validate rejects entries that would escape the target root or that cannot
// be expressed portably.
func (m *Manifest) Validate() error {
	for _, e := range m.Entries {
		if err := ValidatePath(e.Path); err != nil {
			return fmt.Errorf("%s entry: %w", e.Kind, err)
		}
	}
	return nil
}

func ValidatePath(p string) error {
	if p == "" {
		return fmt.Errorf("empty path")
	}
	if strings.Contains(p, `\`) {
		return fmt.Errorf("path must use forward slashes: %q", p)
	}
	if path.IsAbs(p) {
		return fmt.Errorf("absolute paths are not allowed: %q", p)
	}
	clean := path.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("path escapes the target root: %q", p)
	}
	return nil
}

// Filter keeps every directory and only the files named in files. An empty
// list keeps everything. Naming a file the manifest does not contain is an
// error.
func (m *Manifest) Filter(files []string) (*Manifest, error) {
	if len(files) == 0 {
		return m, nil
	}
	allowed := make(map[string]bool, len(files))
	for _, f := range files {
		allowed[path.Clean(strings.ReplaceAll(f, `\`, "/"))] = false
	}

	out := &Manifest{Name: m.Name, Footer: m.Footer}
	for _, e := range m.Entries {
		if e.Kind == FileEntry {
			p := path.Clean(e.Path)
			if _, ok := allowed[p]; !ok {
				continue
			}
			allowed[p] = true
		}
		out.Entries = append(out.Entries, e)
	}

	var unknown []string
	for _, f := range files {
		if !allowed[path.Clean(strings.ReplaceAll(f, `\`, "/"))] {
			unknown = append(unknown, f)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("not in manifest %s: %s", m.Name, strings.Join(unknown, ", "))
	}
	return out, nil
}
