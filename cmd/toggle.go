package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var onCmd = &cobra.Command{
	Use:   "on [name]",
	Short: "Arm an alarm",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runOn,
}

var offCmd = &cobra.Command{
	Use:   "off [name]",
	Short: "Disarm an alarm without deleting it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runOff,
}

func init() {
	rootCmd.AddCommand(onCmd)
	rootCmd.AddCommand(offCmd)
}

func runOn(cmd *cobra.Command, args []string) error {
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

	a.Activate()
	if err := store.Update(a); err != nil {
		return fmt.Errorf("failed to update alarm: %w", err)
	}

	fmt.Printf("✓ Alarm %q armed for %s\n", a.Name, a.At.Format("Mon 02 Jan 15:04"))
	return nil
}

func runOff(cmd *cobra.Command, args []string) error {
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

	a.Deactivate()
	if err := store.Update(a); err != nil {
		return fmt.Errorf("failed to update alarm: %w", err)
	}

	fmt.Printf("✓ Alarm %q disarmed\n", a.Name)
	return nil
}
