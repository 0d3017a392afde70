package sim

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

// The default extra parameter file is compiled into the binary so the
// launcher works without any data files present on the filesystem.
//
//go:embed ardu.parm
var paramsFS embed.FS

// paramFileName is the name given to the materialised copy inside the
// scratch workspace.
const paramFileName = "ardu.parm"

// writeDefaultParams writes the embedded parameter file into dir and
// returns the path of the written copy.
func writeDefaultParams(dir string) (string, error) {
	data, err := paramsFS.ReadFile(paramFileName)
	if err != nil {
		return "", fmt.Errorf("reading embedded param file: %w", err)
	}

	path := filepath.Join(dir, paramFileName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("writing param file: %w", err)
	}

	return path, nil
}
