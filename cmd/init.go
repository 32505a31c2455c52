package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"goupm/pkg"
)

func RunInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	project := fs.String("project", ".", "Path to the Unity project root")
	fs.Parse(args)

	if path, ok := pkg.LocateManifest(*project); ok {
		fmt.Println("Manifest already exists:", path)
		return
	}

	dir := filepath.Join(*project, "Packages")
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Println("Error creating Packages directory:", err)
		return
	}

	path := filepath.Join(dir, "manifest.json")
	if err := pkg.SaveManifest(path, &pkg.Manifest{Dependencies: map[string]string{}}); err != nil {
		fmt.Println("Error writing manifest.json:", err)
		return
	}
	fmt.Println("Created", path)
}
