package main

import (
	"embed"
	"io/fs"
	"log"
	"os"

	"tasklist/internal/cli"
)

//go:embed templates/*
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

func main() {
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatalf("Failed to load static files: %v", err)
	}

	assets := cli.Assets{
		Templates: templatesFS,
		Static:    staticSub,
	}

	if err := cli.Execute(assets); err != nil {
		os.Exit(1)
	}
}
