package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"gridbayes/adapters/excel"
	"gridbayes/adapters/rng"
	"gridbayes/app"
	"gridbayes/internal/config"
)

// One-shot batch run: load the configuration, execute the pipeline once,
// print the report, optionally export a workbook. Exits non-zero with the
// failing validation on error.
func main() {
	exportPath := flag.String("export", "", "write the run as an .xlsx workbook to this path")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	service := app.NewInferenceService(rng.NewSeededAdapter(), 1)

	result, err := service.Run(ctx, cfg.Run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(app.BuildReport(result))

	path := *exportPath
	if path == "" {
		path = cfg.Export.Path
	}
	if path != "" {
		exporter := excel.NewWorkbookExporter()
		if err := exporter.Export(ctx, result, path); err != nil {
			fmt.Fprintf(os.Stderr, "workbook export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Workbook written to %s\n", path)
	}
}
