// cmd/tools/registry-check/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"inquiry-workers/internal/common/errors"
	"inquiry-workers/pkg/registry"
)

func main() {
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	showCmd := flag.NewFlagSet("show", flag.ExitOnError)

	listPath := listCmd.String("path", "", "Registry file (defaults to the embedded registry)")
	validatePath := validateCmd.String("path", "", "Registry file (defaults to the embedded registry)")
	showTaskType := showCmd.String("taskType", "", "Task type to show (e.g., score-inquiry)")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "list":
		listCmd.Parse(os.Args[2:])
		reg := mustLoad(*listPath)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TASK TYPE\tTIMEOUT\tRETRIES\tERROR CODES")
		for _, a := range reg.Activities {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", a.TaskType, a.Timeout, a.Retries, strings.Join(a.ErrorCodes, ","))
		}
		w.Flush()

	case "validate":
		validateCmd.Parse(os.Args[2:])
		reg := mustLoad(*validatePath)
		if err := reg.Validate(knownErrorCodes()); err != nil {
			fmt.Printf("Registry validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Registry validation passed. Found %d activities.\n", len(reg.Activities))

	case "show":
		showCmd.Parse(os.Args[2:])
		if *showTaskType == "" {
			fmt.Println("Error: taskType is required for show.")
			showCmd.Usage()
			os.Exit(1)
		}
		a, ok := registry.MustDefault().Find(*showTaskType)
		if !ok {
			fmt.Printf("Activity %s not found\n", *showTaskType)
			os.Exit(1)
		}
		fmt.Printf("%s (%s)\n  %s\n  timeout=%s retries=%d workflows=%s\n",
			a.DisplayName, a.ID, a.Description, a.Timeout, a.Retries, strings.Join(a.Workflows, ","))

	case "help":
		fallthrough
	default:
		help()
	}
}

func mustLoad(path string) *registry.ActivityRegistry {
	var (
		reg *registry.ActivityRegistry
		err error
	)
	if path == "" {
		reg, err = registry.Default()
	} else {
		reg, err = registry.LoadRegistry(path)
	}
	if err != nil {
		fmt.Printf("Error loading registry: %v\n", err)
		os.Exit(1)
	}
	return reg
}

// knownErrorCodes lists every BPMN error code a worker can raise.
func knownErrorCodes() map[string]bool {
	codes := make(map[string]bool, len(errors.BPMNErrorMapping))
	for _, code := range errors.BPMNErrorMapping {
		codes[code] = true
	}
	return codes
}

func help() {
	fmt.Print(`
Usage: registry-check <command> [flags]

Commands:
  list      List the registered activities
  validate  Validate a registry file against the known error codes
  show      Show one activity
  help      Show this help message

Examples:
  registry-check list
  registry-check validate -path pkg/registry/activities.json
  registry-check show -taskType score-inquiry
` + "\n")
}
