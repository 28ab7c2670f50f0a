package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// removeIMSSubscriberCmd はIMS加入者レコードをIMSIで解決して削除する。
var removeIMSSubscriberCmd = &cobra.Command{
	Use:   "remove-ims-subscriber IMSI",
	Short: "Remove an IMS subscriber",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := provisioner.RemoveIMSSubscriber(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "IMS subscriber %s removed (ims subscriber id %d)\n", args[0], id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeIMSSubscriberCmd)
}
