package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lynxis/pyhss-cli/internal/provision"
)

var addIMSMSISDNs []string

// addIMSSubscriberCmd は既存加入者に対してIMS加入者レコードを登録する。
var addIMSSubscriberCmd = &cobra.Command{
	Use:   "add-ims-subscriber IMSI",
	Short: "Add an IMS subscriber for an existing subscriber",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := &provision.AddIMSSubscriberInput{
			IMSI:    args[0],
			MSISDNs: addIMSMSISDNs,
		}

		ims, err := provisioner.AddIMSSubscriber(cmd.Context(), in)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "IMS subscriber %s added under id: %d\n", args[0], ims.IMSSubscriberID)
		return nil
	},
}

func init() {
	addIMSSubscriberCmd.Flags().StringArrayVar(&addIMSMSISDNs, "msisdn", nil, "MSISDN (first is the primary, repeatable)")
	cobra.CheckErr(addIMSSubscriberCmd.MarkFlagRequired("msisdn"))

	rootCmd.AddCommand(addIMSSubscriberCmd)
}
