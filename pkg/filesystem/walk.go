package filesystem

import (
	"path/filepath"
	"sort"
	"strings"
)

// Walk calls fn for every regular file below root, in lexical order.
// The name passed to fn is relative to root and slash separated.
// Hidden files and directories are skipped.
func Walk(fsys FS, root string, fn func(name string) error) error {
	return walk(fsys, root, "", fn)
}

func walk(fsys FS, root, rel string, fn func(name string) error) error {
	entries, err := fsys.ReadDir(filepath.Join(root, rel))
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()
		if rel != "" {
			name = rel + "/" + name
		}
		if entry.IsDir() {
			if err := walk(fsys, root, name, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(name); err != nil {
			return err
		}
	}
	return nil
}
