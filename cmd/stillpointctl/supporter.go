package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	supporterCmd := &cobra.Command{Use: "supporter", Short: "Supporter views"}

	caseloadCmd := &cobra.Command{
		Use:   "caseload",
		Short: "List participants",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(apiFlag + "/supporter/caseload")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	supporterCmd.AddCommand(caseloadCmd)

	timelineCmd := &cobra.Command{
		Use:   "timeline USER_ID",
		Short: "Merged activity timeline for one participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/supporter/users/%s", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	supporterCmd.AddCommand(timelineCmd)

	rootCmd.AddCommand(supporterCmd)
}
