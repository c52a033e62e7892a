package project

import (
	_ "embed"
	"strings"
)

//go:embed defaults.yaml
var defaultsYAML string

// Default returns the embedded catalog used when no projects file is
// configured. The embedded data is validated at init, so a broken build
// fails immediately rather than at first render.
func Default() *Catalog {
	return defaultCatalog
}

var defaultCatalog = func() *Catalog {
	c, err := Load(strings.NewReader(defaultsYAML))
	if err != nil {
		panic("embedded defaults.yaml is invalid: " + err.Error())
	}
	return c
}()
