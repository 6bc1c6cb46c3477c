// Package scenarios registers the built-in scenarios embedded in the
// binary.
package scenarios

import (
	"embed"
	"io/fs"
	"path"
	"strings"

	"github.com/vovakirdan/crawlcore/internal/registry"
	"github.com/vovakirdan/crawlcore/internal/scenario"
)

//go:embed *.yaml
var files embed.FS

func init() {
	entries, err := fs.Glob(files, "*.yaml")
	if err != nil {
		panic(err)
	}
	for _, name := range entries {
		id := strings.TrimSuffix(path.Base(name), ".yaml")
		registry.Register(id, func() (*scenario.Scenario, error) {
			data, err := files.ReadFile(name)
			if err != nil {
				return nil, err
			}
			return scenario.Parse(data)
		})
	}
}
