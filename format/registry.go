package format

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Registry holds registered formats.
type Registry struct {
	formats map[string]Format
}

// DefaultRegistry is the global format registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new format registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Format),
	}
}

// Register adds a format to the registry.
func (r *Registry) Register(f Format) {
	r.formats[strings.ToLower(f.Name())] = f
}

// Get retrieves a format by name. Lookup is case-insensitive, so citation
// markers such as "BIBTEX" resolve to the "bibtex" plugin.
func (r *Registry) Get(name string) (Format, bool) {
	f, ok := r.formats[strings.ToLower(name)]
	return f, ok
}

// GetCitationParser retrieves a citation parser by name.
func (r *Registry) GetCitationParser(name string) (CitationParser, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	p, ok := f.(CitationParser)
	if !ok {
		return nil, fmt.Errorf("format %s does not parse citations", name)
	}
	return p, nil
}

// GetSerializer retrieves a serializer by name.
func (r *Registry) GetSerializer(name string) (Serializer, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	s, ok := f.(Serializer)
	if !ok {
		return nil, fmt.Errorf("format %s does not support serialization", name)
	}
	return s, nil
}

// List returns all registered format names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DetectSerializer picks a serializer from an output file extension.
func (r *Registry) DetectSerializer(filename string) (Serializer, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, name := range r.List() {
		s, ok := r.formats[name].(Serializer)
		if !ok {
			continue
		}
		if slices.Contains(s.Extensions(), ext) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("could not detect format for %s", filename)
}

// Register adds a format to the default registry.
func Register(f Format) {
	DefaultRegistry.Register(f)
}

// Get retrieves a format from the default registry.
func Get(name string) (Format, bool) {
	return DefaultRegistry.Get(name)
}

// GetCitationParser retrieves a citation parser from the default registry.
func GetCitationParser(name string) (CitationParser, error) {
	return DefaultRegistry.GetCitationParser(name)
}

// GetSerializer retrieves a serializer from the default registry.
func GetSerializer(name string) (Serializer, error) {
	return DefaultRegistry.GetSerializer(name)
}

// DetectSerializer detects a serializer using the default registry.
func DetectSerializer(filename string) (Serializer, error) {
	return DefaultRegistry.DetectSerializer(filename)
}
