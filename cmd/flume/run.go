package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/agentstation/flume"
	"github.com/agentstation/flume/middleware"
	"github.com/agentstation/flume/registry"
	"github.com/agentstation/flume/yaml"
)

var (
	runInput     string
	runInputFile string
)

var runCmd = &cobra.Command{
	Use:   "run <pipeline.yaml>",
	Short: "Execute a pipeline definition",
	Long: `Run loads a YAML pipeline definition, builds the topology, and executes
it with the given JSON input. The result is printed as JSON on stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flow, err := loadPipeline(args[0])
		if err != nil {
			return err
		}

		input, err := readInput()
		if err != nil {
			return err
		}

		result, err := flow.Execute(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("execute pipeline: %w", err)
		}

		fmt.Println(oj.JSON(result, 2))
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runInput, "input", "i", "null", "JSON input value")
	runCmd.Flags().StringVar(&runInputFile, "input-file", "", "Read the JSON input from a file (- for stdin)")
	rootCmd.AddCommand(runCmd)
}

// loadPipeline parses a definition file and builds its topology with the
// builtin node catalog registered.
func loadPipeline(path string) (*flume.Flow, error) {
	def, err := yaml.NewParser().ParseFile(path)
	if err != nil {
		return nil, err
	}

	loader := yaml.NewLoader()
	registry.RegisterAll(loader)

	flow, err := loader.Load(def)
	if err != nil {
		return nil, err
	}

	if verbose {
		logged := middleware.Apply(flow, middleware.Logging(newLogger(verbose)))
		return flume.NewFlow(def.Name, logged), nil
	}
	return flow, nil
}

func readInput() (flume.Value, error) {
	data := []byte(runInput)
	if runInputFile != "" {
		var err error
		if runInputFile == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(runInputFile) // #nosec G304 - user-provided input file
		}
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
	}

	value, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse input JSON: %w", err)
	}
	return value, nil
}
