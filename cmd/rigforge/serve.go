package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpAdapter "github.com/dkealton/rigforge/internal/adapters/http"
	"github.com/dkealton/rigforge/pkg/adapters/file"
	redisAdapter "github.com/dkealton/rigforge/pkg/adapters/redis"
	"github.com/dkealton/rigforge/pkg/ports"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the blueprint HTTP server",
	Long:  `Starts rigforge in server mode, exposing blueprints and action definitions as a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")

		s, logger, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error initializing rigforge: %v\n", err)
			os.Exit(1)
		}

		var store ports.Store
		if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
			client := redis.NewClient(&redis.Options{Addr: addr})
			if err := client.Ping(cmd.Context()).Err(); err != nil {
				fmt.Printf("Error connecting to redis at %s: %v\n", addr, err)
				os.Exit(1)
			}
			store = redisAdapter.NewFromClient(client, s.Registry)
		} else {
			dataDir, _ := cmd.Flags().GetString("data")
			store = file.New(s.Registry, dataDir)
		}

		handler := httpAdapter.NewHandler(store, s.Registry, s.Defs, logger)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Rigforge Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Rigforge Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("data", ".rigforge/blueprints", "Directory for the file-backed blueprint store")
	serveCmd.Flags().String("redis", "", "Redis address (host:port); uses Redis instead of the file store when set")
}
