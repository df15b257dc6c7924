package distribution

import (
	"encoding/json"
	"io"
	"os"
	"slices"

	apperr "github.com/matzehuels/apidoc/pkg/errors"
)

// document is the JSON snapshot layout.
type document struct {
	Name     string     `json:"name"`
	Version  string     `json:"version"`
	Bundles  []*Bundle  `json:"bundles"`
	Packages []*Package `json:"packages"`
}

// LoadFile reads a JSON snapshot from path.
func LoadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "snapshot %s", path)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeIO, err, "open snapshot %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a JSON snapshot. Bundles must have unique, non-empty ids.
func Load(r io.Reader) (*Snapshot, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidSnapshot, err, "decode snapshot")
	}

	seen := make(map[string]bool, len(doc.Bundles))
	for i, b := range doc.Bundles {
		if b == nil || b.ID == "" {
			return nil, apperr.New(apperr.ErrCodeInvalidSnapshot, "bundle #%d has no id", i)
		}
		if seen[b.ID] {
			return nil, apperr.New(apperr.ErrCodeInvalidSnapshot, "duplicate bundle id %q", b.ID)
		}
		seen[b.ID] = true
		for _, c := range b.Components {
			if c == nil || c.ID == "" {
				return nil, apperr.New(apperr.ErrCodeInvalidSnapshot, "bundle %q declares a component without id", b.ID)
			}
			if kind := nullEntry(c); kind != "" {
				return nil, apperr.New(apperr.ErrCodeInvalidSnapshot, "component %q has a null %s", c.ID, kind)
			}
		}
	}
	for i, p := range doc.Packages {
		if p == nil || p.ID == "" {
			return nil, apperr.New(apperr.ErrCodeInvalidSnapshot, "package #%d has no id", i)
		}
	}

	return NewSnapshot(doc.Name, doc.Version, doc.Bundles, doc.Packages), nil
}

// nullEntry names the first kind of nested artifact of c with a null entry,
// or returns "".
func nullEntry(c *Component) string {
	switch {
	case slices.Contains(c.Services, nil):
		return "service"
	case slices.Contains(c.ExtensionPoints, nil):
		return "extension point"
	case slices.Contains(c.Extensions, nil):
		return "contribution"
	case slices.Contains(c.Operations, nil):
		return "operation"
	}
	return ""
}
