package main

import (
	"context"
	"flag"
	"os"

	"github.com/Tomoshibi1125/solo-compendium-sub000/internal/platform/config"
	catalogimporter "github.com/Tomoshibi1125/solo-compendium-sub000/internal/tools/importer/content/ascendant/v1"
)

func main() {
	cfg, err := catalogimporter.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := catalogimporter.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
