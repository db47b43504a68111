package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/askiada/go-workflow/pkg/workflow"
	"github.com/askiada/go-workflow/pkg/workflow/config"
	"github.com/askiada/go-workflow/pkg/workflow/drawer"
	"github.com/askiada/go-workflow/pkg/workflow/logging"
	"github.com/askiada/go-workflow/pkg/workflow/measure"
	"github.com/askiada/go-workflow/pkg/workflow/model"
)

var (
	definitionFile string
	skipRecord     bool
	svgFile        string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a workflow from a YAML definition",
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := config.LoadFile(definitionFile)
		if err != nil {
			return err
		}

		msr := measure.NewDefaultMeasure()
		opts := []model.EngineOption{
			measure.EngineMeasure(msr),
			logging.EngineLogger(logger),
		}
		if svgFile != "" {
			opts = append(opts, drawer.EngineDrawer(drawer.NewSVGDrawer(svgFile), msr))
		}

		eng, err := def.Build(opts...)
		if err != nil {
			return err
		}

		rec := workflow.NewRecord()
		rec.Skip = skipRecord

		rec, err = eng.Execute(cmd.Context(), rec)
		if err != nil {
			return err
		}

		fmt.Printf("history: [%s]\n", strings.Join(rec.History, ", "))

		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&definitionFile, "file", "f", "workflow.yaml", "workflow definition file")
	runCmd.Flags().BoolVar(&skipRecord, "skip", false, "set the record skip flag before running")
	runCmd.Flags().StringVar(&svgFile, "svg", "", "draw the step chain to this file after the run")
}
