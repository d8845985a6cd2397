package cmd

import (
	"fmt"

	"wekker/internal/ui"

	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete an alarm",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Delete without confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := checkConfig()
	if err != nil {
		return err
	}

	store, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	a, err := pickAlarm(store, args)
	if err != nil {
		return err
	}

	if !deleteForce {
		confirmed, err := ui.Confirm(fmt.Sprintf("Delete alarm %q?", a.Name))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := store.Delete(a.Name); err != nil {
		return err
	}

	fmt.Printf("✓ Alarm %q deleted\n", a.Name)
	return nil
}
