package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileCatalog es el formato YAML del catálogo. El orden de "guide" define el orden de declaración.
type fileCatalog struct {
	Guide   []GuideEntry `yaml:"guide"`
	Hazards struct {
		Poisons  HazardList `yaml:"poisons"`
		Cautions HazardList `yaml:"cautions"`
	} `yaml:"hazards"`
}

// Load lee un catálogo desde un archivo YAML.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return New(fc.Guide, fc.Hazards.Poisons, fc.Hazards.Cautions)
}

// MarshalYAML serializa el catálogo en el mismo formato que acepta Parse.
func (c *Catalog) MarshalYAML() (any, error) {
	var fc fileCatalog
	fc.Guide = c.Guide()
	fc.Hazards.Poisons = c.Poisons()
	fc.Hazards.Cautions = c.Cautions()
	return fc, nil
}
