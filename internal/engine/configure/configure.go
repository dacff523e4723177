// Package configure implements build selection resolution and configuration
// generation.
//
// A configure run resolves the effective products/mode/site/version selection
// from flags, the cached user configuration, and project defaults (in that
// precedence), validates it against the project configuration, and emits the
// environment file and build configuration files.
package configure

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/whisk/internal/core/domain"
	"go.trai.ch/whisk/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBuildDir is the build directory used when neither the defaults
// section nor the user provides one.
const DefaultBuildDir = "build"

// Options mirrors the configure command flags.
type Options struct {
	// Init marks first-time initialization; it unlocks version and build
	// directory changes and resets the cached actual version.
	Init bool

	Products []string
	Mode     string
	Site     string
	Version  string
	BuildDir string

	// List prints the available selections instead of configuring.
	List bool
	// Write regenerates the build configuration files.
	Write bool
	// NoConfig ignores the cached user configuration.
	NoConfig bool
	// Quiet suppresses the selection summary.
	Quiet bool

	// EnvFile is the path of the environment file to generate; empty skips
	// environment file generation.
	EnvFile string
}

// Configurator resolves selections and generates configuration output.
type Configurator struct {
	loader ports.ConfigLoader
	users  ports.UserConfigStore
	logger ports.Logger
	out    io.Writer
}

// NewConfigurator creates a new Configurator writing user-facing output to out.
func NewConfigurator(
	loader ports.ConfigLoader,
	users ports.UserConfigStore,
	logger ports.Logger,
	out io.Writer,
) *Configurator {
	return &Configurator{
		loader: loader,
		users:  users,
		logger: logger,
		out:    out,
	}
}

// Run executes one configure invocation against the project rooted at root
// with the configuration file at confPath.
func (c *Configurator) Run(ctx context.Context, root, confPath string, opts Options) error {
	project, err := c.loader.Load(root, confPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load project configuration")
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve project root")
	}

	cachePath := project.Cache
	if cachePath == "" {
		cachePath = filepath.Join(absRoot, ".config.yaml")
	}

	var cached *domain.UserConfig
	if !opts.NoConfig {
		cached, err = c.users.Load(cachePath)
		if err != nil {
			return zerr.Wrap(err, "failed to load cached selection")
		}
	}

	sel, prevActual := initialSelection(project, cached)

	if opts.List {
		c.printAll(project, sel)
		return nil
	}

	write := opts.Write || opts.Init

	changed, err := c.applyOverrides(project, &sel, opts)
	if err != nil {
		return err
	}
	write = write || changed

	if err := requireComplete(sel); err != nil {
		return err
	}

	if err := c.resolveActualVersion(project, &sel, prevActual, opts.Init); err != nil {
		return err
	}

	version, ok := project.Versions[sel.ActualVersion]
	if !ok {
		verErr := zerr.With(domain.ErrUnknownVersion, "version", sel.ActualVersion)
		return zerr.With(verErr, "reason", "cached selection references an undeclared version")
	}

	if err := checkLayers(project, version, sel); err != nil {
		return err
	}

	if !filepath.IsAbs(sel.BuildDir) {
		sel.BuildDir = filepath.Join(absRoot, sel.BuildDir)
	}

	if opts.EnvFile != "" {
		if err := writeEnvFile(opts.EnvFile, project, version, sel, opts.Init, absRoot); err != nil {
			return err
		}
	}

	if !opts.NoConfig {
		record := domain.UserConfig{
			Mode:          sel.Mode,
			Products:      sel.Products,
			Site:          sel.Site,
			Version:       sel.Version,
			ActualVersion: sel.ActualVersion,
			BuildDir:      sel.BuildDir,
		}
		if err := c.users.Save(cachePath, record); err != nil {
			return zerr.Wrap(err, "failed to save cached selection")
		}
	}

	if write {
		if err := writeBuildConf(ctx, absRoot, project, version, sel); err != nil {
			return err
		}
	}

	// A pure rewrite run ends here; the summary belongs to selection runs.
	if write && !opts.Init {
		return nil
	}

	if !opts.Quiet {
		c.printSummary(sel)
	}

	return nil
}

// initialSelection seeds the selection from defaults, then the cached user
// configuration. It also returns the cached actual version, which anchors
// default-version resolution for already initialized environments.
func initialSelection(project *domain.Project, cached *domain.UserConfig) (domain.Selection, string) {
	sel := domain.Selection{
		Products: project.Defaults.Products,
		Mode:     project.Defaults.Mode,
		Site:     project.Defaults.Site,
		Version:  domain.DefaultVersionName,
		BuildDir: project.Defaults.BuildDir,
	}
	if sel.BuildDir == "" {
		sel.BuildDir = DefaultBuildDir
	}

	prevActual := ""
	if cached != nil {
		if cached.Mode != "" {
			sel.Mode = cached.Mode
		}
		if len(cached.Products) > 0 {
			sel.Products = cached.Products
		}
		if cached.Site != "" {
			sel.Site = cached.Site
		}
		if cached.Version != "" {
			sel.Version = cached.Version
		}
		if cached.BuildDir != "" {
			sel.BuildDir = cached.BuildDir
		}
		prevActual = cached.ActualVersion
	}

	return sel, prevActual
}

// applyOverrides applies flag values onto the selection, validating each
// against the project configuration. It reports whether any override was
// given, which forces a configuration rewrite.
func (c *Configurator) applyOverrides(project *domain.Project, sel *domain.Selection, opts Options) (bool, error) {
	changed := false

	if len(opts.Products) > 0 {
		changed = true
		products := splitProducts(opts.Products)
		for _, p := range products {
			if _, ok := project.Products[p]; !ok {
				fmt.Fprintf(c.out, "Unknown product '%s'. Please choose from:\n", p)
				c.printProducts(project, *sel)
				return false, zerr.With(domain.ErrUnknownProduct, "product", p)
			}
		}
		sel.Products = products
	}

	if opts.Mode != "" {
		changed = true
		if _, ok := project.Modes[opts.Mode]; !ok {
			fmt.Fprintf(c.out, "Unknown mode '%s'. Please choose from:\n", opts.Mode)
			c.printModes(project, *sel)
			return false, zerr.With(domain.ErrUnknownMode, "mode", opts.Mode)
		}
		sel.Mode = opts.Mode
	}

	if opts.Site != "" {
		changed = true
		if _, ok := project.Sites[opts.Site]; !ok {
			fmt.Fprintf(c.out, "Unknown site '%s'. Please choose from:\n", opts.Site)
			c.printSites(project, *sel)
			return false, zerr.With(domain.ErrUnknownSite, "site", opts.Site)
		}
		sel.Site = opts.Site
	}

	if opts.Version != "" {
		changed = true
		if opts.Init {
			if opts.Version != domain.DefaultVersionName {
				if _, ok := project.Versions[opts.Version]; !ok {
					fmt.Fprintf(c.out, "Unknown version '%s'. Please choose from:\n", opts.Version)
					c.printVersions(project, *sel)
					return false, zerr.With(domain.ErrUnknownVersion, "version", opts.Version)
				}
			}
			sel.Version = opts.Version
		} else if opts.Version != sel.Version {
			frozenErr := zerr.With(domain.ErrVersionFrozen, "requested", opts.Version)
			return false, zerr.With(frozenErr, "current", sel.Version)
		}
	}

	if opts.BuildDir != "" {
		if !opts.Init {
			return false, zerr.With(domain.ErrBuildDirFrozen, "requested", opts.BuildDir)
		}
		sel.BuildDir = opts.BuildDir
	}

	return changed, nil
}

// splitProducts normalizes repeated and space-separated product arguments
// into a sorted, deduplicated list.
func splitProducts(args []string) []string {
	var products []string
	for _, arg := range args {
		products = append(products, strings.Fields(arg)...)
	}
	slices.Sort(products)
	return slices.Compact(products)
}

func requireComplete(sel domain.Selection) error {
	if len(sel.Products) == 0 {
		return zerr.With(domain.ErrSelectionIncomplete, "missing", "products")
	}
	if sel.Mode == "" {
		return zerr.With(domain.ErrSelectionIncomplete, "missing", "mode")
	}
	if sel.Site == "" {
		return zerr.With(domain.ErrSelectionIncomplete, "missing", "site")
	}
	return nil
}

// resolveActualVersion resolves the concrete version behind the selection.
// With the synthetic default version, every selected product must agree on
// its default_version; an already initialized environment additionally pins
// the previously resolved version.
func (c *Configurator) resolveActualVersion(
	project *domain.Project,
	sel *domain.Selection,
	prevActual string,
	init bool,
) error {
	if sel.Version != domain.DefaultVersionName {
		sel.ActualVersion = sel.Version
		return nil
	}

	actual := prevActual
	if init {
		actual = ""
	}

	for _, p := range sel.Products {
		v := project.Products[p].DefaultVersion
		if actual == "" {
			actual = v
			continue
		}
		if v != actual {
			incErr := zerr.With(domain.ErrIncompatibleProducts, "product", p)
			incErr = zerr.With(incErr, "product_version", v)
			return zerr.With(incErr, "resolved_version", actual)
		}
	}

	sel.ActualVersion = actual
	return nil
}

// checkLayers verifies that every layer collection required by core and the
// selected products is present in the resolved version.
func checkLayers(project *domain.Project, version domain.VersionSpec, sel domain.Selection) error {
	available := version.LayerIndex()

	for _, name := range append([]string{domain.CoreProductName}, sel.Products...) {
		product, _ := project.Product(name)

		var missing []string
		for _, l := range product.Layers {
			if _, ok := available[l]; !ok {
				missing = append(missing, l)
			}
		}
		if len(missing) > 0 {
			layerErr := zerr.With(domain.ErrMissingLayers, "product", name)
			layerErr = zerr.With(layerErr, "layers", strings.Join(missing, " "))
			return zerr.With(layerErr, "version", sel.ActualVersion)
		}
	}

	return nil
}

func (c *Configurator) printSummary(sel domain.Selection) {
	fmt.Fprintf(c.out, "PRODUCT    = %s\n", strings.Join(sel.Products, " "))
	fmt.Fprintf(c.out, "MODE       = %s\n", sel.Mode)
	fmt.Fprintf(c.out, "SITE       = %s\n", sel.Site)
	if sel.Version != sel.ActualVersion {
		fmt.Fprintf(c.out, "VERSION    = %s (%s)\n", sel.Version, sel.ActualVersion)
	} else {
		fmt.Fprintf(c.out, "VERSION    = %s\n", sel.Version)
	}
}
