package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/painterjd/driveyanutssolver/internal/piece"
	"github.com/painterjd/driveyanutssolver/internal/solver"
	"github.com/spf13/cobra"
)

var (
	piecesSpec string
	workers    int
	timeout    time.Duration
	limit      int
	showStats  bool
	outputFile string
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Search for all puzzle solutions",
		Long: `Search every distinct arrangement of the seven pieces, and every ring
rotation of each, for configurations where all touching edges match.
Each solution is printed as one line: the rotated marking sequences of
the center and the six outer positions, in order.

Examples:
  drivenuts solve
  drivenuts solve --workers 4
  drivenuts solve -p "153264,142356,135426,135246,123456,125634,165432"
  drivenuts solve --output solutions.html`,
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&piecesSpec, "pieces", "p", "", "Seven comma-separated pieces like 153264,... (default: built-in set)")
	solveCmd.Flags().IntVarP(&workers, "workers", "w", 1, "Worker goroutines; values above 1 parallelize the search")
	solveCmd.Flags().DurationVar(&timeout, "timeout", 0, "Search timeout (0 = none)")
	solveCmd.Flags().IntVar(&limit, "limit", 0, "Check only the first N arrangements (0 = all 840)")
	solveCmd.Flags().BoolVar(&showStats, "stats", false, "Print search statistics to stderr")
	solveCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (e.g., solutions.html)")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	set := piece.Standard()
	if piecesSpec != "" {
		var err error
		set, err = piece.ParseSet(piecesSpec)
		if err != nil {
			return fmt.Errorf("invalid pieces: %w", err)
		}
	}

	s := solver.New(set, &solver.Options{
		Workers: workers,
		Timeout: timeout,
		Limit:   limit,
	})

	solutions, err := s.Solve()
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if outputFile != "" {
		// Ensure .html extension
		filename := outputFile
		if filepath.Ext(filename) != ".html" {
			filename = filename + ".html"
		}

		if err := generateHTML(filename, solutions); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		fmt.Printf("Wrote %d solution(s) to %s\n", len(solutions), filename)
	} else {
		for _, sol := range solutions {
			fmt.Println(sol)
		}
	}

	if showStats {
		stats := s.Stats()
		fmt.Fprintf(os.Stderr, "candidates: %d  passes: %d  solutions: %d\n",
			stats.Candidates, stats.Passes, stats.Solutions)
	}

	return nil
}

// generateHTML creates an HTML file with solutions, one per page.
func generateHTML(filename string, solutions []solver.Solution) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	// Write HTML header
	_, err = fmt.Fprintf(file, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Drive Ya Nuts Solutions</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .page {
            page-break-after: always;
            background-color: white;
            padding: 40px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .page:last-child {
            page-break-after: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 30px;
            text-align: center;
        }
        .ring {
            display: inline-block;
            border: 3px solid #000;
            margin: 20px auto;
            padding: 20px;
            font-family: 'Courier New', monospace;
            font-size: 18px;
            line-height: 1.5;
            white-space: pre;
        }
        @media print {
            body {
                background-color: white;
            }
            .page {
                margin-bottom: 0;
                box-shadow: none;
            }
        }
    </style>
</head>
<body>
`)
	if err != nil {
		return err
	}

	// Write each solution on its own page
	for i, sol := range solutions {
		_, err = fmt.Fprintf(file, `    <div class="page">
        <h1>Solution #%d</h1>
        <div class="ring">%s</div>
    </div>
`, i+1, sol.Board.Format())
		if err != nil {
			return err
		}
	}

	// Write HTML footer
	_, err = fmt.Fprintf(file, `</body>
</html>
`)
	return err
}
