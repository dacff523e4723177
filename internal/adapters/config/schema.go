package config

import (
	"go.trai.ch/whisk/internal/core/domain"
	"go.trai.ch/zerr"
)

// validate enforces the structural rules the original configuration schema
// expresses: products reference declared versions, versions are runnable, and
// the reserved core name is not redeclared.
func validate(p *domain.Project) error {
	if len(p.Products) == 0 {
		return zerr.New("config declares no products")
	}
	if len(p.Versions) == 0 {
		return zerr.New("config declares no versions")
	}

	if _, ok := p.Products[domain.CoreProductName]; ok {
		return zerr.New("product name 'core' is reserved")
	}

	for name, product := range p.Products {
		if product.DefaultVersion == "" {
			return zerr.With(zerr.New("product missing default_version"), "product", name)
		}
		if _, ok := p.Versions[product.DefaultVersion]; !ok {
			verErr := zerr.With(zerr.New("product default_version is not a declared version"), "product", name)
			return zerr.With(verErr, "default_version", product.DefaultVersion)
		}
	}

	for name, version := range p.Versions {
		if version.OEInit == "" {
			return zerr.With(zerr.New("version missing oeinit"), "version", name)
		}

		seen := make(map[string]bool, len(version.Layers))
		for _, l := range version.Layers {
			if l.Name == "" {
				return zerr.With(zerr.New("layer collection missing name"), "version", name)
			}
			if seen[l.Name] {
				dupErr := zerr.With(zerr.New("duplicate layer collection"), "version", name)
				return zerr.With(dupErr, "layer", l.Name)
			}
			seen[l.Name] = true
		}
	}

	return nil
}
