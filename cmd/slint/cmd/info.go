package cmd

import (
	"fmt"

	"github.com/sjinzh/slint/internal/project"
)

func init() {
	RegisterCommand(&Command{
		Name:  "info",
		Short: "Show resolved project configuration",
		Long: `Info resolves the project configuration from go.mod and the
optional slint.yaml and prints the effective values.`,
		Usage: "slint info",
		Run:   runInfo,
	})
}

func runInfo(args []string) error {
	root, err := project.FindProjectRoot()
	if err != nil {
		return err
	}

	resolved, err := project.Resolve(root)
	if err != nil {
		return err
	}

	fmt.Printf("Project root:  %s\n", resolved.Root)
	fmt.Printf("Module path:   %s\n", resolved.ModulePath)
	fmt.Printf("App name:      %s\n", resolved.AppName)
	fmt.Printf("App ID:        %s\n", resolved.AppID)
	if resolved.ManifestPath != "" {
		fmt.Printf("Resources:     %s\n", resolved.ManifestPath)
	} else {
		fmt.Printf("Resources:     (no manifest configured)\n")
	}
	return nil
}
