package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	programCmd := &cobra.Command{
		Use:   "program",
		Short: "Fetch the curriculum tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(apiFlag + "/program")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(programCmd)

	progressCmd := &cobra.Command{
		Use:   "progress",
		Short: "Fetch completion percentage and assessment trends",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(apiFlag + "/progress")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(progressCmd)

	assessmentsCmd := &cobra.Command{
		Use:   "assessments",
		Short: "List the assessment catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(apiFlag + "/assessments")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(assessmentsCmd)
}
