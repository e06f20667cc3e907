package assessment

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed instruments/*.yaml
var instrumentFiles embed.FS

// Catalog guarda os instrumentos validados, indexados pela chave
type Catalog struct {
	definitions map[string]Definition
}

// LoadCatalog carrega e valida todos os instrumentos embutidos.
// Qualquer erro aqui deve impedir a inicialização.
func LoadCatalog() (*Catalog, error) {
	return LoadCatalogFS(instrumentFiles, "instruments")
}

// LoadCatalogFS carrega todos os *.yaml de dir em fsys
func LoadCatalogFS(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read instruments: %w", err)
	}

	catalog := &Catalog{definitions: make(map[string]Definition)}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		def, err := ParseDefinition(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}

		if err := catalog.Add(def); err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

// ParseDefinition decodifica e valida um instrumento em YAML
func ParseDefinition(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("failed to decode instrument: %w", err)
	}
	if def.Key == "" {
		return Definition{}, fmt.Errorf("instrument has no key")
	}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Add registra uma definição já validada
func (c *Catalog) Add(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if _, exists := c.definitions[def.Key]; exists {
		return fmt.Errorf("duplicate instrument key %q", def.Key)
	}
	c.definitions[def.Key] = def
	return nil
}

// Get retorna o instrumento pela chave
func (c *Catalog) Get(key string) (Definition, error) {
	def, ok := c.definitions[key]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrUnknownInstrument, key)
	}
	return def, nil
}

// List retorna todos os instrumentos ordenados pela chave
func (c *Catalog) List() []Definition {
	keys := make([]string, 0, len(c.definitions))
	for key := range c.definitions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	defs := make([]Definition, 0, len(keys))
	for _, key := range keys {
		defs = append(defs, c.definitions[key])
	}
	return defs
}
