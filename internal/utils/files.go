package utils

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// EnumExt is the extension of enum declaration files
const EnumExt = ".enum"

// FindEnumFiles recursively finds all .enum files in the specified directory.
// Hidden directories and vendor trees are skipped.
func FindEnumFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != dir && SkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) == EnumExt {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// OutputPath returns the generated file path for a declaration file:
// colors.enum with suffix _enum.go becomes colors_enum.go.
func OutputPath(source, suffix string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + suffix
}

// SkipDir reports whether the walk ignores a directory of that name
func SkipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "vendor" || name == "testdata"
}
