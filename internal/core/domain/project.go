package domain

// ProjectConfigVersion is the only supported project configuration version.
const ProjectConfigVersion = 1

// Project is the parsed project configuration (whisk.yaml).
type Project struct {
	Version  int
	Cache    string
	Defaults Defaults
	Hooks    map[string]string
	Core     Product
	Products map[string]Product
	Modes    map[string]Mode
	Sites    map[string]Site
	Versions map[string]VersionSpec
}

// Defaults holds the fallback selection applied when neither flags nor the
// cached user configuration provide a value.
type Defaults struct {
	Mode     string
	Site     string
	Products []string
	BuildDir string
}

// Product describes a buildable product. The core section of the
// configuration shares this shape, with only Conf and Layers populated.
type Product struct {
	Description    string
	DefaultVersion string
	Layers         []string
	Targets        []string
	Multiconfigs   []string
	Conf           string
}

// Mode describes a build mode and its configuration fragment.
type Mode struct {
	Description string
	Conf        string
}

// Site describes a build site and its configuration fragment.
type Site struct {
	Description string
	Conf        string
}

// VersionSpec describes one selectable Yocto version.
type VersionSpec struct {
	Description string
	OEInit      string
	BitbakeDir  string
	Pyrex       *Pyrex
	Layers      []LayerSet
}

// Pyrex holds the pyrex container integration paths of a version.
type Pyrex struct {
	Root string
	Conf string
}

// LayerSet is a named collection of layer paths provided by a version.
type LayerSet struct {
	Name  string
	Paths []string
}

// LayerIndex returns the version's layer collections keyed by name.
func (v VersionSpec) LayerIndex() map[string][]string {
	idx := make(map[string][]string, len(v.Layers))
	for _, l := range v.Layers {
		idx[l.Name] = l.Paths
	}
	return idx
}

// Hook returns the named hook fragment, or the empty string when unset.
func (p *Project) Hook(name string) string {
	return p.Hooks[name]
}

// Product returns the product with the given name. The reserved name "core"
// resolves to the core section.
func (p *Project) Product(name string) (Product, bool) {
	if name == CoreProductName {
		return p.Core, true
	}
	prod, ok := p.Products[name]
	return prod, ok
}

// CoreProductName is the reserved product name for the core section.
const CoreProductName = "core"
