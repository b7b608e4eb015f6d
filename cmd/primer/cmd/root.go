// Package cmd implements the primer CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (new, status, licenses).
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-primer/primer/cmd/primer/internal/userdir"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "primer",
	Short: "Primer - Python project scaffolding, but Go",
	Long: `Primer generates a standardized Python project layout from a project
name and a handful of flags: package skeleton, packaging metadata,
README, LICENSE, ignore rules, Makefile, and an optional virtual
environment.

Use "primer <command> --help" for more information about a command.`,
	Usage: "primer <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	// Handle no arguments
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --config-dir
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Printf("Primer CLI version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--config-dir":
			if i+1 < len(args) {
				userdir.SetConfigDir(args[i+1])
				i++
			} else {
				return fmt.Errorf("--config-dir requires a directory path")
			}
		default:
			if strings.HasPrefix(arg, "--config-dir=") {
				userdir.SetConfigDir(strings.TrimPrefix(arg, "--config-dir="))
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --config-dir DIR     Override config directory (default: ~/.primer)")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  PRIMER_CONFIG_DIR    Config directory override (lower priority than --config-dir)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  primer new myproject          Scaffold a new project")
	fmt.Println("  primer new myproject --no-venv   Skip the virtual environment")
	fmt.Println("  primer status                 Inspect a generated project")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
