package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// removeAPNCmd はAPNプロファイルを名前で解決して削除する。
var removeAPNCmd = &cobra.Command{
	Use:   "remove-apn APN",
	Short: "Remove an APN profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := provisioner.RemoveAPN(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "APN %s removed (apn id %d)\n", args[0], id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeAPNCmd)
}
