package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// removeSubscriberCmd は加入者レコードを削除する。AUCレコードは残る。
var removeSubscriberCmd = &cobra.Command{
	Use:   "remove-subscriber IMSI",
	Short: "Remove a subscriber from the subscriber database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := provisioner.RemoveSubscriber(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Subscriber %s removed (subscriber id %d)\n", args[0], id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeSubscriberCmd)
}
