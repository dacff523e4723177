package configure

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/whisk/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const generatedHeader = "# This file was dynamically generated by whisk\n"

// writeBuildConf regenerates the build configuration under the build
// directory: site.conf, one multiconfig fragment per declared product, and
// bblayers.conf.
func writeBuildConf(
	ctx context.Context,
	root string,
	project *domain.Project,
	version domain.VersionSpec,
	sel domain.Selection,
) error {
	confDir := filepath.Join(sel.BuildDir, "conf")
	if err := os.MkdirAll(filepath.Join(confDir, "multiconfig"), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create build configuration directory")
	}

	if err := writeConf(filepath.Join(confDir, "site.conf"), siteConf(project, sel)); err != nil {
		return err
	}

	// The product fragments are independent of each other.
	grp, _ := errgroup.WithContext(ctx)
	for _, name := range slices.Sorted(maps.Keys(project.Products)) {
		grp.Go(func() error {
			path := filepath.Join(confDir, "multiconfig", "product-"+name+".conf")
			return writeConf(path, productConf(name, project.Products[name]))
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	return writeConf(filepath.Join(confDir, "bblayers.conf"), layersConf(root, project, version, sel))
}

func writeConf(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return zerr.Wrap(err, "failed to write configuration file")
	}
	return nil
}

// siteConf renders site.conf: the site and mode fragments, the versioned
// TMPDIR/DEPLOY_DIR scheme, per-product targets, and the multiconfig list.
func siteConf(project *domain.Project, sel domain.Selection) string {
	var b strings.Builder
	b.WriteString(generatedHeader)

	b.WriteString(project.Sites[sel.Site].Conf)
	b.WriteString("\n")
	b.WriteString(project.Modes[sel.Mode].Conf)
	b.WriteString("\n")

	b.WriteString(`
WHISK_PRODUCT ?= "core"

# Set TMPDIR to a version specific location
TMPDIR_BASE ?= "${TOPDIR}/tmp/${WHISK_MODE}/${WHISK_ACTUAL_VERSION}"
DEPLOY_DIR_BASE ?= "${TOPDIR}/deploy/${WHISK_MODE}/${WHISK_ACTUAL_VERSION}"

TMPDIR = "${TMPDIR_BASE}/${WHISK_PRODUCT}"

# Set the deploy directory to output to a well-known location
DEPLOY_DIR = "${DEPLOY_DIR_${WHISK_PRODUCT}}"
DEPLOY_DIR_IMAGE = "${DEPLOY_DIR}/images"

DEPLOY_DIR_core = "${DEPLOY_DIR_BASE}/core"
`)

	targets := make([]string, len(sel.Products))
	for i, p := range sel.Products {
		targets[i] = fmt.Sprintf("${WHISK_TARGETS_%s}", p)
	}
	fmt.Fprintf(&b, "WHISK_TARGETS_core = %q\n", strings.Join(targets, " "))

	for _, name := range slices.Sorted(maps.Keys(project.Products)) {
		product := project.Products[name]
		fmt.Fprintf(&b, "DEPLOY_DIR_%s = \"${DEPLOY_DIR_BASE}/%s\"\n", name, name)
		fmt.Fprintf(&b, "WHISK_TARGETS_%s = %q\n", name, strings.Join(slices.Sorted(slices.Values(product.Targets)), " "))
	}
	b.WriteString("\n")

	multiconfigs := map[string]struct{}{}
	for _, p := range sel.Products {
		multiconfigs["product-"+p] = struct{}{}
		for _, mc := range project.Products[p].Multiconfigs {
			multiconfigs[mc] = struct{}{}
		}
	}
	fmt.Fprintf(&b, "BBMULTICONFIG = %q\n", strings.Join(slices.Sorted(maps.Keys(multiconfigs)), " "))
	b.WriteString(`BBMASK += "${BBMASK_${WHISK_PRODUCT}}"

BB_HASHBASE_WHITELIST_append = " WHISK_PROJECT_ROOT"
`)

	b.WriteString(project.Core.Conf)
	b.WriteString("\n")

	return b.String()
}

// productConf renders one multiconfig fragment for a declared product.
func productConf(name string, product domain.Product) string {
	var b strings.Builder
	b.WriteString(generatedHeader)
	fmt.Fprintf(&b, "WHISK_PRODUCT = %q\n", name)
	fmt.Fprintf(&b, "WHISK_PRODUCT_DESCRIPTION = %q\n", product.Description)
	b.WriteString("\n")
	b.WriteString(product.Conf)
	b.WriteString("\n")
	return b.String()
}

// layersConf renders bblayers.conf. Each product masks the layer collections
// it does not request; the union of requested collections across core and the
// selected products becomes BBLAYERS, in version declaration order.
func layersConf(root string, project *domain.Project, version domain.VersionSpec, sel domain.Selection) string {
	var b strings.Builder
	b.WriteString(generatedHeader)
	b.WriteString("BBPATH = \"${TOPDIR}\"\nBBFILES ?= \"\"\n\n")

	available := version.LayerIndex()
	requested := map[string]struct{}{}

	for _, name := range append([]string{domain.CoreProductName}, sel.Products...) {
		product, _ := project.Product(name)
		for _, l := range product.Layers {
			requested[l] = struct{}{}
		}

		for _, l := range slices.Sorted(maps.Keys(available)) {
			if slices.Contains(product.Layers, l) {
				continue
			}
			for _, p := range available[l] {
				fmt.Fprintf(&b, "BBMASK_%s += %q\n", name, p)
			}
		}
		b.WriteString("\n")
	}

	for _, l := range version.Layers {
		if _, ok := requested[l.Name]; !ok {
			continue
		}
		for _, p := range l.Paths {
			fmt.Fprintf(&b, "BBLAYERS += %q\n", p)
		}
	}

	fmt.Fprintf(&b, "BBLAYERS += %q\n\n", root+"/meta-whisk")
	b.WriteString("\n")
	b.WriteString("# This line gives devtool a place to add its layers\nBBLAYERS += \"\"\n")

	return b.String()
}
