package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/flume/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve <pipeline.yaml>",
	Short: "Serve a pipeline over HTTP",
	Long: `Serve loads a YAML pipeline definition and exposes it on POST /execute.
The request body is the pipeline input; the response is the result or an
error object.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flow, err := loadPipeline(args[0])
		if err != nil {
			return err
		}

		logger := newLogger(verbose)
		srv := server.New(flow, server.WithLogger(logger))

		logger.Info(cmd.Context(), "listening", "addr", serveAddr, "pipeline", flow.Name())
		if err := srv.ListenAndServe(serveAddr); err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":3000", "Listen address")
	rootCmd.AddCommand(serveCmd)
}
