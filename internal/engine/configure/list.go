package configure

import (
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"go.trai.ch/whisk/internal/core/domain"
)

// printAll prints every selectable product, mode, site, and version with the
// current selection marked.
func (c *Configurator) printAll(project *domain.Project, sel domain.Selection) {
	fmt.Fprintln(c.out, "Possible products:")
	c.printProducts(project, sel)
	fmt.Fprintln(c.out, "Possible modes:")
	c.printModes(project, sel)
	fmt.Fprintln(c.out, "Possible sites:")
	c.printSites(project, sel)
	fmt.Fprintln(c.out, "Possible versions:")
	c.printVersions(project, sel)
}

func (c *Configurator) printProducts(project *domain.Project, sel domain.Selection) {
	c.printItems(func(w *tabwriter.Writer) {
		for _, name := range slices.Sorted(maps.Keys(project.Products)) {
			printItem(w, slices.Contains(sel.Products, name), name, project.Products[name].Description)
		}
	})
}

func (c *Configurator) printModes(project *domain.Project, sel domain.Selection) {
	c.printItems(func(w *tabwriter.Writer) {
		for _, name := range slices.Sorted(maps.Keys(project.Modes)) {
			printItem(w, name == sel.Mode, name, project.Modes[name].Description)
		}
	})
}

func (c *Configurator) printSites(project *domain.Project, sel domain.Selection) {
	c.printItems(func(w *tabwriter.Writer) {
		for _, name := range slices.Sorted(maps.Keys(project.Sites)) {
			printItem(w, name == sel.Site, name, project.Sites[name].Description)
		}
	})
}

// printVersions lists the declared versions plus the synthetic default
// version resolved from the selected products.
func (c *Configurator) printVersions(project *domain.Project, sel domain.Selection) {
	c.printItems(func(w *tabwriter.Writer) {
		for _, name := range slices.Sorted(maps.Keys(project.Versions)) {
			printItem(w, name == sel.Version, name, project.Versions[name].Description)
		}
		printItem(w, sel.Version == domain.DefaultVersionName, domain.DefaultVersionName, "")
	})
}

func (c *Configurator) printItems(rows func(w *tabwriter.Writer)) {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	rows(w)
	w.Flush()
}

func printItem(w *tabwriter.Writer, current bool, name, description string) {
	marker := "  "
	if current {
		marker = " *"
	}
	fmt.Fprintf(w, "%s\t%s\t%s\n", marker, name, description)
}
