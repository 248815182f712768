package cmd

import (
	"fmt"
	"sort"

	"github.com/sjinzh/slint/internal/project"
	"github.com/sjinzh/slint/pkg/resource"
)

func init() {
	RegisterCommand(&Command{
		Name:  "resources",
		Short: "List and validate the project's resource manifest",
		Long: `Resources loads the manifest configured in slint.yaml and reports
every registered resource. Image resources are probed for their
pixel dimensions; entries that fail to decode are flagged.`,
		Usage: "slint resources",
		Run:   runResources,
	})
}

func runResources(args []string) error {
	root, err := project.FindProjectRoot()
	if err != nil {
		return err
	}

	resolved, err := project.Resolve(root)
	if err != nil {
		return err
	}
	if resolved.ManifestPath == "" {
		return fmt.Errorf("no resource manifest configured in slint.yaml")
	}

	manifest, err := resource.LoadManifest(resolved.ManifestPath)
	if err != nil {
		return err
	}

	names := manifest.Names()
	sort.Strings(names)

	failures := 0
	for _, name := range names {
		res := manifest.Resolve(name)
		width, height, err := resource.DecodeSize(res)
		if err != nil {
			failures++
			fmt.Printf("  %-24s ERROR: %v\n", name, err)
			continue
		}
		fmt.Printf("  %-24s %dx%d\n", name, width, height)
	}

	fmt.Printf("%d resources, %d failed\n", len(names), failures)
	if failures > 0 {
		return fmt.Errorf("%d resources failed to decode", failures)
	}
	return nil
}
