// Command outliner batch-processes a directory of PDF files, writing one
// JSON outline per document. Documents are independent, so they are
// processed on a small worker pool; each worker runs a complete pipeline
// instance per file and shares nothing with the others.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	outliner "github.com/kk3747/Adobe-Hackathon-Round1a"
)

func main() {
	inputDir := flag.String("input", "input", "directory containing PDF files")
	outputDir := flag.String("output", "output", "directory to write JSON outlines to")
	workers := flag.Int("workers", envInt("OUTLINER_WORKERS", 4), "number of documents to process concurrently")
	flag.Parse()

	if err := run(*inputDir, *outputDir, *workers); err != nil {
		log.Fatal(err)
	}
}

func run(inputDir, outputDir string, workers int) error {
	if workers < 1 {
		workers = 1
	}

	files, err := findPDFs(inputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no PDF files found in %s", inputDir)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	jobs := make(chan string)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if err := processFile(path, outputDir); err != nil {
					log.Printf("%s: %v", filepath.Base(path), err)
				}
			}
		}()
	}

	for _, path := range files {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	return nil
}

// processFile extracts one document's outline and writes it next to the
// input name with a .json extension
func processFile(path, outputDir string) error {
	result, err := outliner.Open(path).Outline()
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".json"
	outPath := filepath.Join(outputDir, name)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := result.WriteJSON(out); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	log.Printf("%s: title=%q entries=%d", filepath.Base(path), result.Title, len(result.Outline))
	return nil
}

// findPDFs lists the PDF files in a directory, case-insensitively
func findPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// envInt reads an integer environment variable with a fallback
func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
