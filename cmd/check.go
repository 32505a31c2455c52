package cmd

import (
	"flag"
	"fmt"
	"strings"

	"goupm/pkg"
)

// RunCheck reports whether the project manifest satisfies the requested
// minimum version. The result is also the process exit status, so build
// scripts can branch on it.
func RunCheck(args []string) bool {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	project := fs.String("project", ".", "Path to the Unity project root")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Println("Usage: goupm check [--project path] <package>@<minVersion>")
		return false
	}

	name, minVersion, ok := splitPackageArg(rest[0])
	if !ok {
		fmt.Println("Expected <package>@<minVersion>, got:", rest[0])
		return false
	}

	if pkg.CheckDependencySatisfied(*project, name, minVersion) {
		fmt.Printf("%s satisfies minimum version %s\n", name, minVersion)
		return true
	}
	fmt.Printf("%s does not satisfy minimum version %s\n", name, minVersion)
	return false
}

func splitPackageArg(arg string) (name, version string, ok bool) {
	parts := strings.SplitN(arg, "@", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
