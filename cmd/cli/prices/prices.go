package prices

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thanwa-dev/priceboard/cmd/cli/output"
	"github.com/thanwa-dev/priceboard/cmd/cli/root"
	"github.com/thanwa-dev/priceboard/internal/repo"
)

var historyLimit int

var (
	setRAM float64
	setCPU float64
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	pricesCmd := &cobra.Command{
		Use:   "prices",
		Short: "Inspect and insert price records",
	}

	latestCmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the current price record",
		RunE:  runLatest,
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent price records, newest first",
		RunE:  runHistory,
	}
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of records to show")

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Insert a new price record",
		Long:  "Insert a new price record in the reference currency (USD). The table is append-only; the new record becomes current.",
		RunE:  runSet,
	}
	setCmd.Flags().Float64Var(&setRAM, "ram", 0, "RAM price per GB (USD)")
	setCmd.Flags().Float64Var(&setCPU, "cpu", 0, "CPU price per core (USD)")
	setCmd.MarkFlagRequired("ram")
	setCmd.MarkFlagRequired("cpu")

	pricesCmd.AddCommand(latestCmd, historyCmd, setCmd)
	root.GetRoot().AddCommand(pricesCmd)
}

// ==========================
// Latest Price
// ==========================
func runLatest(cmd *cobra.Command, args []string) error {
	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	rec, err := repo.NewPriceRepo(db).LatestOrDefault(context.Background())
	if err != nil {
		return err
	}

	if rec.ID == 0 {
		fmt.Println("No price records yet; showing defaults.")
	}

	output.RenderTable(
		[]string{"ID", "RAM/GB", "CPU/core", "Currency", "Updated"},
		[][]interface{}{{rec.ID, fmt.Sprintf("%.2f", rec.RAMPrice), fmt.Sprintf("%.2f", rec.CPUPrice), rec.Currency, rec.UpdatedAt}},
	)
	return nil
}

// ==========================
// Price History
// ==========================
func runHistory(cmd *cobra.Command, args []string) error {
	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := repo.NewPriceRepo(db).History(context.Background(), historyLimit)
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []interface{}{
			rec.ID,
			fmt.Sprintf("%.2f", rec.RAMPrice),
			fmt.Sprintf("%.2f", rec.CPUPrice),
			rec.Currency,
			rec.UpdatedAt,
		})
	}

	output.RenderTable([]string{"ID", "RAM/GB", "CPU/core", "Currency", "Updated"}, rows)
	return nil
}

// ==========================
// Set Prices
// ==========================
func runSet(cmd *cobra.Command, args []string) error {
	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	rec, err := repo.NewPriceRepo(db).Insert(context.Background(), setRAM, setCPU)
	if err != nil {
		return err
	}

	fmt.Printf("Inserted price record %d (RAM %.2f, CPU %.2f %s).\n",
		rec.ID, rec.RAMPrice, rec.CPUPrice, rec.Currency)
	return nil
}
