package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askiada/go-workflow/internal/sample"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Summarize the integers in a line-oriented file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		numbers, err := sample.ReadNumbers(args[0])
		if err != nil {
			return err
		}

		stats := sample.Summarize(numbers)
		fmt.Printf("count: %d total: %d average: %.2f\n", len(numbers), stats.Total, stats.Average)

		return nil
	},
}
