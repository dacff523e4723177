// Package config provides the project configuration loader for whisk.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/whisk/internal/core/domain"
	"go.trai.ch/whisk/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ProjectRootVar is the variable exposing the absolute project root to the
// configuration during template expansion.
const ProjectRootVar = "WHISK_PROJECT_ROOT"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a %-templated YAML file.
type Loader struct{}

// NewLoader creates a new project configuration Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// projectFile mirrors the YAML structure of the project configuration.
type projectFile struct {
	Version  int                    `yaml:"version"`
	Cache    string                 `yaml:"cache"`
	Defaults defaultsDTO            `yaml:"defaults"`
	Hooks    map[string]string      `yaml:"hooks"`
	Core     productDTO             `yaml:"core"`
	Products map[string]productDTO  `yaml:"products"`
	Modes    map[string]fragmentDTO `yaml:"modes"`
	Sites    map[string]fragmentDTO `yaml:"sites"`
	Versions map[string]versionDTO  `yaml:"versions"`
}

type defaultsDTO struct {
	Mode     string   `yaml:"mode"`
	Site     string   `yaml:"site"`
	Products []string `yaml:"products"`
	BuildDir string   `yaml:"build_dir"`
}

type productDTO struct {
	Description    string   `yaml:"description"`
	DefaultVersion string   `yaml:"default_version"`
	Layers         []string `yaml:"layers"`
	Targets        []string `yaml:"targets"`
	Multiconfigs   []string `yaml:"multiconfigs"`
	Conf           string   `yaml:"conf"`
}

type fragmentDTO struct {
	Description string `yaml:"description"`
	Conf        string `yaml:"conf"`
}

type versionDTO struct {
	Description string       `yaml:"description"`
	OEInit      string       `yaml:"oeinit"`
	BitbakeDir  string       `yaml:"bitbakedir"`
	Pyrex       *pyrexDTO    `yaml:"pyrex"`
	Layers      []layerSetDTO `yaml:"layers"`
}

type pyrexDTO struct {
	Root string `yaml:"root"`
	Conf string `yaml:"conf"`
}

type layerSetDTO struct {
	Name  string   `yaml:"name"`
	Paths []string `yaml:"paths"`
}

// Load reads the project configuration at path, expanding %VAR placeholders
// from the process environment plus WHISK_PROJECT_ROOT.
func (l *Loader) Load(root, path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve project root")
	}

	vars := environMap()
	vars[ProjectRootVar] = absRoot

	expanded, err := Expand(string(data), vars)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to expand config template"), "path", path)
	}

	var file projectFile
	if err := yaml.Unmarshal([]byte(expanded), &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if file.Version != domain.ProjectConfigVersion {
		verErr := zerr.With(domain.ErrConfigVersion, "version", file.Version)
		return nil, zerr.With(verErr, "path", path)
	}

	project := file.toDomain()
	if err := validate(project); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return project, nil
}

func (f *projectFile) toDomain() *domain.Project {
	project := &domain.Project{
		Version: f.Version,
		Cache:   f.Cache,
		Defaults: domain.Defaults{
			Mode:     f.Defaults.Mode,
			Site:     f.Defaults.Site,
			Products: f.Defaults.Products,
			BuildDir: f.Defaults.BuildDir,
		},
		Hooks:    f.Hooks,
		Core:     f.Core.toDomain(),
		Products: make(map[string]domain.Product, len(f.Products)),
		Modes:    make(map[string]domain.Mode, len(f.Modes)),
		Sites:    make(map[string]domain.Site, len(f.Sites)),
		Versions: make(map[string]domain.VersionSpec, len(f.Versions)),
	}

	for name, p := range f.Products {
		project.Products[name] = p.toDomain()
	}
	for name, m := range f.Modes {
		project.Modes[name] = domain.Mode{Description: m.Description, Conf: m.Conf}
	}
	for name, s := range f.Sites {
		project.Sites[name] = domain.Site{Description: s.Description, Conf: s.Conf}
	}
	for name, v := range f.Versions {
		spec := domain.VersionSpec{
			Description: v.Description,
			OEInit:      v.OEInit,
			BitbakeDir:  v.BitbakeDir,
		}
		if v.Pyrex != nil {
			spec.Pyrex = &domain.Pyrex{Root: v.Pyrex.Root, Conf: v.Pyrex.Conf}
		}
		for _, l := range v.Layers {
			spec.Layers = append(spec.Layers, domain.LayerSet{Name: l.Name, Paths: l.Paths})
		}
		project.Versions[name] = spec
	}

	return project
}

func (p productDTO) toDomain() domain.Product {
	return domain.Product{
		Description:    p.Description,
		DefaultVersion: p.DefaultVersion,
		Layers:         p.Layers,
		Targets:        p.Targets,
		Multiconfigs:   p.Multiconfigs,
		Conf:           p.Conf,
	}
}

func environMap() map[string]string {
	env := os.Environ()
	vars := make(map[string]string, len(env))
	for _, entry := range env {
		if k, v, ok := strings.Cut(entry, "="); ok {
			vars[k] = v
		}
	}
	return vars
}
