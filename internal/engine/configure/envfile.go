package configure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/whisk/internal/core/domain"
	"go.trai.ch/zerr"
)

// writeEnvFile generates the shell fragment sourced by the whisk wrapper.
// The fragment exports the resolved selection and, on initialization runs,
// chains into the version's build environment script.
func writeEnvFile(
	path string,
	project *domain.Project,
	version domain.VersionSpec,
	sel domain.Selection,
	init bool,
	root string,
) error {
	var b strings.Builder

	fmt.Fprintf(&b, "export WHISK_PRODUCTS=%q\n", strings.Join(sel.Products, " "))
	fmt.Fprintf(&b, "export WHISK_MODE=%q\n", sel.Mode)
	fmt.Fprintf(&b, "export WHISK_SITE=%q\n", sel.Site)
	fmt.Fprintf(&b, "export WHISK_VERSION=%q\n", sel.Version)
	fmt.Fprintf(&b, "export WHISK_ACTUAL_VERSION=%q\n", sel.ActualVersion)
	b.WriteString("\n")
	fmt.Fprintf(&b, "export WHISK_BUILD_DIR=%s\n", sel.BuildDir)
	fmt.Fprintf(&b, "export WHISK_INIT=%t\n", init)

	b.WriteString(project.Hook("pre_init"))
	b.WriteString("\n")

	if init {
		if version.BitbakeDir != "" {
			fmt.Fprintf(&b, "export BITBAKEDIR=%q\n", version.BitbakeDir)
		}

		b.WriteString(`export BB_ENV_EXTRAWHITE="${BB_ENV_EXTRAWHITE} WHISK_PROJECT_ROOT WHISK_PRODUCTS WHISK_MODE WHISK_SITE WHISK_ACTUAL_VERSION"` + "\n")

		if version.Pyrex != nil {
			fmt.Fprintf(&b, "PYREX_CONFIG_BIND=%q\n", root)
			fmt.Fprintf(&b, "PYREX_ROOT=%q\n", version.Pyrex.Root)
			fmt.Fprintf(&b, "PYREX_OEINIT=%q\n", version.OEInit)
			fmt.Fprintf(&b, "PYREXCONFFILE=%q\n", version.Pyrex.Conf)
			b.WriteString("\n")
			fmt.Fprintf(&b, ". %s/pyrex-init-build-env $WHISK_BUILD_DIR\n", version.Pyrex.Root)
		} else {
			fmt.Fprintf(&b, ". %s $WHISK_BUILD_DIR\n", version.OEInit)
		}
	}

	b.WriteString(project.Hook("post_init"))
	b.WriteString("\n")

	b.WriteString("unset WHISK_BUILD_DIR WHISK_INIT\n")

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to prepare environment file directory")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return zerr.Wrap(err, "failed to write environment file")
	}
	return nil
}
