package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/askiada/go-workflow/internal/sample"
	"github.com/askiada/go-workflow/pkg/workflow"
	"github.com/askiada/go-workflow/pkg/workflow/logging"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in fetch/validate/transform workflow",
	RunE: func(cmd *cobra.Command, args []string) error {
		fetch, err := workflow.NewStep("fetch", 0)
		if err != nil {
			return err
		}
		validate, err := workflow.NewStep("validate", 1)
		if err != nil {
			return err
		}
		transform, err := workflow.NewStep("transform", 0)
		if err != nil {
			return err
		}

		eng, err := workflow.New(
			[]*workflow.Step{fetch, validate, transform},
			logging.EngineLogger(logger),
		)
		if err != nil {
			return err
		}

		rec, err := eng.Execute(cmd.Context(), workflow.NewRecord())
		if err != nil {
			return err
		}

		stats := sample.Summarize(sample.Fibonacci(10))

		fmt.Printf("history: [%s]\n", strings.Join(rec.History, ", "))
		fmt.Printf("fibonacci total: %d average: %.2f\n", stats.Total, stats.Average)
		fmt.Printf("normalized unit vector: %s\n", sample.NewVector(3, 4).Normalize())

		return nil
	},
}
