package root

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thanwa-dev/priceboard/internal/config"
	"github.com/thanwa-dev/priceboard/internal/db"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:   "priceboard",
	Short: "Priceboard operator CLI",
	Long:  "Command line interface for provisioning admins and inspecting price records.",
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Optional helper to return the RootCmd
func GetRoot() *cobra.Command {
	return RootCmd
}

// OpenDB connects to the database using the same environment configuration
// as the server. The CLI works directly against the store; the web surface
// has no provisioning endpoints.
func OpenDB() (*sql.DB, error) {
	cfg := config.Load()
	return db.Connect(
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBUser,
		cfg.DBPass,
		cfg.DBMaxOpenConns,
		cfg.DBMaxIdleConns,
	)
}
