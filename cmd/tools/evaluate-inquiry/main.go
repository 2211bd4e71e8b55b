// cmd/tools/evaluate-inquiry/main.go
package main

import (
	"encoding/json"
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inquiry-workers/internal/common/errors"
	"inquiry-workers/internal/models"
	"inquiry-workers/internal/scoring"
)

func main() {
	in := flag.String("in", "", "Submission JSON file (required)")
	out := flag.String("out", ".", "Directory the decision letter is written to")
	date := flag.String("date", "", "Export date as YYYY-MM-DD (defaults to today)")
	asJSON := flag.Bool("json", false, "Print the scoring result as JSON")
	flag.Parse()

	if *in == "" {
		fmt.Println("Error: -in is required.")
		flag.Usage()
		os.Exit(1)
	}

	at := time.Now()
	if *date != "" {
		parsed, err := time.Parse("2006-01-02", *date)
		if err != nil {
			fmt.Printf("Error: invalid -date %q: %v\n", *date, err)
			os.Exit(1)
		}
		at = parsed
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		fmt.Printf("Error reading submission: %v\n", err)
		os.Exit(1)
	}

	sub, err := scoring.DecodeSubmission(data)
	if err != nil {
		var invalid *errors.InvalidSubmissionError
		if stderrors.As(err, &invalid) {
			fmt.Println("Submission is invalid:")
			for _, fe := range invalid.Errors {
				fmt.Printf("  %-20s %-14s %s\n", fe.Field, fe.Code, fe.Message)
			}
			os.Exit(2)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	result := scoring.ScoreApplication(sub)
	export := scoring.ExportLetterAt(sub, result, at)

	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	path := filepath.Join(*out, export.Filename)
	if err := os.WriteFile(path, []byte(export.Content), 0o644); err != nil {
		fmt.Printf("Error writing decision letter: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Printf("Error encoding result: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printResult(result, path)
}

func printResult(result models.ScoringResult, path string) {
	fmt.Printf("Decision:   %s\n", result.Decision)
	fmt.Printf("Score:      %d/%d (%d%%)\n", result.TotalScore, result.MaxScore, result.Percentage)
	fmt.Println("Breakdown:")
	for _, category := range models.Categories {
		score := result.Breakdown[category]
		fmt.Printf("  %-16s %2d/%-2d  %s\n", category, score.Score, score.Max, score.Feedback)
	}

	if len(result.Recommendations) > 0 {
		fmt.Println("Recommendations:")
		for _, rec := range result.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}

	fmt.Printf("Letter written to %s\n", path)
}
