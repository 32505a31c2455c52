package main

import (
	"fmt"
	"os"

	"goupm/cmd"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  goupm check [--project path] <package>@<minVersion>")
		fmt.Println("  goupm ensure [--project path] --registry-name <name> --registry-url <url> --scopes <a,b> [--reset-lock] <package>@<version>")
		fmt.Println("  goupm init [--project path]")
		return
	}

	cmdName := os.Args[1]
	switch cmdName {
	case "check":
		if !cmd.RunCheck(os.Args[2:]) {
			os.Exit(1)
		}
	case "ensure":
		cmd.RunEnsure(os.Args[2:])
	case "init":
		cmd.RunInit(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n", cmdName)
		fmt.Println("Available commands: check, ensure, init")
	}
}
