package export

// Descriptor describes an exporter.
type Descriptor struct {
	Name        string     `toml:"-"`
	Title       string     `toml:"title"`
	Description string     `toml:"description"`
	Filename    string     `toml:"filename"`
	Mimetype    string     `toml:"mimetype"`
	Properties  Properties `toml:"properties"`
}

// Merge returns d with every field set in other replacing its own. The name
// is never changed, and a non-nil property map replaces the whole map.
func (d Descriptor) Merge(other Descriptor) Descriptor {
	merged := d
	if other.Title != "" {
		merged.Title = other.Title
	}
	if other.Description != "" {
		merged.Description = other.Description
	}
	if other.Filename != "" {
		merged.Filename = other.Filename
	}
	if other.Mimetype != "" {
		merged.Mimetype = other.Mimetype
	}
	if other.Properties != nil {
		merged.Properties = other.Properties.Clone()
	} else {
		merged.Properties = d.Properties.Clone()
	}
	return merged
}
