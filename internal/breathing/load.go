package breathing

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// programFile is the on-disk layout of a user programs file.
type programFile struct {
	Programs []Program `yaml:"programs"`
}

// LoadFile reads user programs from a YAML file and adds them to the
// catalog. A missing file is not an error.
func (c *Catalog) LoadFile(path string) (int, error) {
	if path == "" {
		return 0, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("open programs file: %w", err)
	}
	defer f.Close()
	return c.Load(f)
}

// Load decodes programs from r and adds each one. Loading stops at the
// first invalid program; programs before it remain registered.
func (c *Catalog) Load(r io.Reader) (int, error) {
	var pf programFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("decode programs: %w", err)
	}
	for i, p := range pf.Programs {
		if err := c.Add(p); err != nil {
			return i, fmt.Errorf("program %d: %w", i, err)
		}
	}
	return len(pf.Programs), nil
}
