package cmd

import (
	"flag"
	"fmt"
	"strings"

	"goupm/pkg"
)

func RunEnsure(args []string) {
	fs := flag.NewFlagSet("ensure", flag.ExitOnError)
	project := fs.String("project", ".", "Path to the Unity project root")
	regName := fs.String("registry-name", "", "Scoped registry display name")
	regURL := fs.String("registry-url", "", "Scoped registry URL")
	scopes := fs.String("scopes", "", "Comma-separated registry scopes")
	resetLock := fs.Bool("reset-lock", false, "Drop the package from packages-lock.json after patching")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 1 || *regURL == "" || len(splitScopes(*scopes)) == 0 {
		fmt.Println("Usage: goupm ensure [--project path] --registry-name <name> --registry-url <url> --scopes <a,b> [--reset-lock] <package>@<version>")
		return
	}

	name, version, ok := splitPackageArg(rest[0])
	if !ok {
		fmt.Println("Expected <package>@<version>, got:", rest[0])
		return
	}

	patch := pkg.Patch{
		PackageName:  name,
		Version:      version,
		RegistryName: *regName,
		RegistryURL:  *regURL,
		Scopes:       splitScopes(*scopes),
	}
	if err := pkg.EnsureDependencyAndRegistry(*project, patch); err != nil {
		fmt.Println("Error patching manifest.json:", err)
		return
	}
	fmt.Printf("Ensured %s %s and registry %s\n", name, version, *regURL)

	if *resetLock {
		removed, err := pkg.DropLockEntry(*project, name)
		if err != nil {
			fmt.Println("Error updating packages-lock.json:", err)
			return
		}
		if removed {
			fmt.Printf("Dropped %s from packages-lock.json\n", name)
		}
	}
}

func splitScopes(s string) []string {
	var scopes []string
	for _, scope := range strings.Split(s, ",") {
		scope = strings.TrimSpace(scope)
		if scope != "" {
			scopes = append(scopes, scope)
		}
	}
	return scopes
}
