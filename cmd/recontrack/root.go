package main

import (
	"context"
	"recontrack/cmd/recontrack/server"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Execute() error {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "recontrack",
		Short: "Asset inventory backend for reconnaissance tracking",
		Long:  `Recontrack tracks targets, their root domains, and discovered subdomains together with services, notes, and labels`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.AddCommand(server.NewServerCommand())
	return rootCmd.ExecuteContext(context.Background())
}
