package main

import (
	"fmt"
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(os.Args[2:])
	case "publish":
		err = runPublish(os.Args[2:])
	case "delete":
		err = runDelete(os.Args[2:])
	case "stats":
		err = runStats(os.Args[2:])
	case "version":
		fmt.Printf("inkpress %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`inkpress - a content-authoring client for a REST blog backend

Usage:
  inkpress <command> [arguments]

Commands:
  list                List posts in the backend collection
  publish [flags]     Validate, normalize, and publish a post
  delete <id>         Delete a post by id
  stats               Print per-author post counts
  version             Print the inkpress version
  help                Show this help message

Backend location comes from config.yaml or the INKPRESS_BACKEND_URL
environment variable (default http://localhost:3001).

Examples:
  inkpress list
  inkpress publish -title "Hello world" -description "First post body" -image cover.png
  inkpress delete 42`)
}
