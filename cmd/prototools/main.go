package main

import (
	"context"
	"fmt"
	"os"

	"github.com/milonpl/prototools"
	"github.com/milonpl/prototools/cmd/prototools/commands"
	"github.com/milonpl/prototools/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("prototools v%s\n", prototools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "sanitize":
		if err := commands.HandleSanitize(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "list":
		if err := commands.HandleList(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("prototools v%s - entity prototype YAML tools\n\n", prototools.Version())
	fmt.Println("Usage: prototools <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sanitize   Remove components and fields already inherited from parents")
	fmt.Println("  list       List loaded entity prototype ids")
	fmt.Println("  mcp        Serve prototools over the Model Context Protocol (stdio)")
	fmt.Println("  version    Print version information")
	fmt.Println("  help       Show this help")
	fmt.Println()
	fmt.Println("Run 'prototools <command> -h' for command-specific flags.")
}
