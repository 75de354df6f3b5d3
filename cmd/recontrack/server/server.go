package server

import (
	"fmt"
	"os"
	"recontrack/api/routes"
	"recontrack/internal/config"
	"recontrack/internal/dao"
	"recontrack/internal/database"
	"recontrack/internal/notification"
	"recontrack/internal/services"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type ServerOpts struct {
	Port int
	Ip   string
}

func NewServerCommand() *cobra.Command {
	ServerConfig := &ServerOpts{}

	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Start the recontrack server",
		Long:  `Start the recontrack server to manage the asset inventory over HTTP`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			database.InitDB(cfg)

			var notifier *notification.NotificationClient
			if os.Getenv("DISCORD_TOKEN") != "" {
				notifier, err = notification.NewNotificationClient()
				if err != nil {
					log.Warnf("Failed to initialize Discord client: %v", err)
				} else {
					defer notifier.Close()
					log.Info("Discord notifications enabled")
				}
			} else {
				log.Info("DISCORD_TOKEN not set - Discord notifications disabled")
			}

			if cfg.WatchDir != "" {
				targetDao := dao.NewTargetDAO(database.DB)
				subdomainDao := dao.NewSubdomainDAO(database.DB)
				ingestService := services.NewIngestService(targetDao, subdomainDao, notifier)
				watcher := services.NewIngestWatcher(ingestService, cfg.WatchDir)
				go func() {
					if err := watcher.Run(cmd.Context()); err != nil {
						log.Errorf("Ingest watcher stopped: %v", err)
					}
				}()
			}

			router := routes.InitRouter(database.DB, notifier)
			return router.Run(fmt.Sprintf("%s:%d", ServerConfig.Ip, ServerConfig.Port))
		},
	}

	serverCmd.Flags().IntVarP(&ServerConfig.Port, "port", "p", 8080, "Port to run the server on")
	serverCmd.Flags().StringVarP(&ServerConfig.Ip, "ip", "i", "localhost", "IP address to bind the server to")

	return serverCmd
}
