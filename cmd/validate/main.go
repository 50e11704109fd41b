package main

import (
	"fmt"
	"os"

	"github.com/tatianab/text-rooms/internal/models"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world.yaml|dir>...\n", os.Args[0])
		os.Exit(1)
	}

	files, err := collect(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No world files found")
		os.Exit(1)
	}

	failed := 0
	for _, file := range files {
		fmt.Printf("Validating %s...\n", file)
		warnings, err := validateFile(file)
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed++
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d world files are invalid\n", failed, len(files))
		os.Exit(1)
	}
	fmt.Println("All world files are valid!")
}

// collect expands directories into the world files they contain.
func collect(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		worlds, err := models.ListWorlds(arg)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", arg, err)
		}
		files = append(files, worlds...)
	}
	return files, nil
}

func validateFile(path string) ([]string, error) {
	w, err := models.LoadWorld(path)
	if err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return w.Warnings(), fmt.Errorf("%s: %w", path, err)
	}
	return w.Warnings(), nil
}
