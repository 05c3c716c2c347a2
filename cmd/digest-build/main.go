package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/readcircle/digest/pkg/digest"
	"github.com/readcircle/digest/pkg/digest/config"
	"github.com/readcircle/digest/pkg/digest/store/sqlite"
)

func main() {
	var (
		inputDir    = flag.String("in", "", "Input directory of summary files (required)")
		outputPath  = flag.String("out", "", "Output JSON path (required)")
		rulesPath   = flag.String("rules", "", "Keyword rules YAML (optional, default: built-in table)")
		archivePath = flag.String("archive", "", "Run-archive SQLite path (optional)")
	)
	flag.Parse()

	if *inputDir == "" {
		log.Fatal("--in required")
	}
	if *outputPath == "" {
		log.Fatal("--out required")
	}

	verbose := isTruthy(os.Getenv("DIGEST_VERBOSE"))

	ctx := context.Background()

	loader := &config.Loader{RulesPath: *rulesPath}
	classifier, err := loader.Load()
	if err != nil {
		log.Fatal(err)
	}

	opts := digest.Options{
		Classifier: classifier,
		Verbose:    verbose,
		Logf:       log.Printf,
	}

	if *archivePath != "" {
		archive, err := sqlite.Open(ctx, *archivePath)
		if err != nil {
			log.Fatal("open archive:", err)
		}
		defer archive.Close()
		opts.Archive = archive
	}

	builder := digest.New(opts)
	result, err := builder.Run(ctx, *inputDir, *outputPath)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(result.Stats.Render())
	if result.RunID != "" {
		log.Printf("archived run %s", result.RunID)
	}
}

func isTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
