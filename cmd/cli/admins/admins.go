package admins

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/spf13/cobra"
	"github.com/thanwa-dev/priceboard/cmd/cli/output"
	"github.com/thanwa-dev/priceboard/cmd/cli/root"
	"github.com/thanwa-dev/priceboard/internal/auth"
	"github.com/thanwa-dev/priceboard/internal/repo"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	adminsCmd := &cobra.Command{
		Use:   "admins",
		Short: "Manage admin credentials",
		Long: `Provision and list admin accounts for the price console.
There is no signup flow; accounts are created here, directly in the database.`,
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new admin",
		Long:  "Create a new admin with username and password. The password is stored as a bcrypt hash.",
		RunE:  runCreate,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List admins",
		RunE:  runList,
	}

	adminsCmd.AddCommand(createCmd, listCmd)
	root.GetRoot().AddCommand(adminsCmd)
}

// ==========================
// Create Admin
// ==========================
func runCreate(cmd *cobra.Command, args []string) error {
	var username, password string
	fmt.Print("Username: ")
	fmt.Scanln(&username)
	fmt.Print("Password: ")
	fmt.Scanln(&password)

	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	admin, err := repo.NewAdminRepo(db).Create(context.Background(), username, hash)
	if err != nil {
		if e, ok := err.(*pq.Error); ok && e.Code == "23505" {
			return fmt.Errorf("username %q already exists", username)
		}
		return err
	}

	fmt.Printf("Admin %q created (id %d).\n", admin.Username, admin.ID)
	return nil
}

// ==========================
// List Admins
// ==========================
func runList(cmd *cobra.Command, args []string) error {
	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	admins, err := repo.NewAdminRepo(db).List(context.Background())
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(admins))
	for _, a := range admins {
		rows = append(rows, []interface{}{a.ID, a.Username})
	}

	output.RenderTable([]string{"ID", "Username"}, rows)
	return nil
}
