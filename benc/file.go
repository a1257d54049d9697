package benc

import (
	"os"
	"path/filepath"

	"github.com/manokara/bencedit/ir"
)

// Load decodes the file at path.
func Load(path string) (*ir.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Save encodes node to path. The write goes to a temp file in the
// same directory first so os.Rename replaces the target atomically.
func Save(path string, node *ir.Node) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if err := Encode(tmp, node); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
