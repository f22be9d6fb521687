package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas holds compiled schemas keyed by name and definition, so
// two schemas sharing a name never share a validator.
var compiledSchemas sync.Map // map[string]*jsonschema.Schema

// validateResponse checks a model's JSON output against schema. A nil
// schema accepts anything. Failures are *ErrInvalidResponse so the retry
// layer gives the model one more chance.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("%s: not JSON: %w", schema.Name, err)}
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	if err := compiled.Validate(doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("%s: %w", schema.Name, err)}
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", schema.Name, err)
	}
	key := schema.Name + "\x00" + string(def)
	if cached, ok := compiledSchemas.Load(key); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants decoded JSON, not Go maps with typed slices.
	var doc any
	if err := json.Unmarshal(def, &doc); err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", schema.Name, err)
	}

	c := jsonschema.NewCompiler()
	url := "mendly://schemas/" + schema.Name + ".json"
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %q: %w", schema.Name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	compiledSchemas.Store(key, compiled)
	return compiled, nil
}
