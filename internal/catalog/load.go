package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://catalog.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error

	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// fileHero and fileLevel mirror the on-disk YAML shape.
type fileHero struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

type fileLevel struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Topic       string `yaml:"topic"`
	Hero        int    `yaml:"hero"`
}

type fileCatalog struct {
	Heroes []fileHero  `yaml:"heroes"`
	Levels []fileLevel `yaml:"levels"`
}

// Default returns the catalog embedded in the binary.
// It panics if the embedded file is invalid, since that is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(defaultCatalogYAML))
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load decodes a YAML catalog, checks it against the catalog JSON schema,
// and builds a validated Catalog.
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var fc fileCatalog
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	heroes := make([]Hero, 0, len(fc.Heroes))
	for _, h := range fc.Heroes {
		heroes = append(heroes, Hero{ID: h.ID, Name: h.Name, ImageRef: h.Image})
	}

	levels := make([]Level, 0, len(fc.Levels))
	for _, l := range fc.Levels {
		topic, err := ParseTopic(l.Topic)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", l.ID, err)
		}
		levels = append(levels, Level{
			ID:          l.ID,
			Name:        l.Name,
			Description: l.Description,
			Topic:       topic,
			RewardID:    l.Hero,
		})
	}

	return New(levels, heroes)
}

// validateDocument runs the decoded YAML document through the JSON schema.
func validateDocument(doc any) error {
	sch, err := catalogSchema()
	if err != nil {
		return err
	}

	// The validator expects JSON-shaped values, so normalise the YAML
	// decoding through a JSON round trip.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("normalise catalog: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("normalise catalog: %w", err)
	}

	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}

func catalogSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add catalog schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile catalog schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}
