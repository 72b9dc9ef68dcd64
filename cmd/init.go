package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/stackpick/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .stackpickrc.json",
	Long: `The init command writes the default configuration to .stackpickrc.json in
the current directory. Existing files are left alone unless --force is given.`,
	Args: cobra.NoArgs,
	Run:  run(runInit),
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(args []string) error {
	path := config.ConfigFiles[0]
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveConfig(config.Default(), path); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(stdout, "Wrote %s\n", path)
	}
	return nil
}
