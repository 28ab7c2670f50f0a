package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lynxis/pyhss-cli/internal/provision"
)

var addSubscriberInput provision.AddSubscriberInput

// addSubscriberCmd は加入者をAUCと加入者データベースへ登録する。
var addSubscriberCmd = &cobra.Command{
	Use:   "add-subscriber IMSI",
	Short: "Add a subscriber to the AUC and subscriber database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addSubscriberInput.IMSI = args[0]

		result, err := provisioner.AddSubscriber(cmd.Context(), &addSubscriberInput)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Subscriber %s added as subscriber id %d\n", args[0], result.SubscriberID)
		return nil
	},
}

func init() {
	f := addSubscriberCmd.Flags()
	f.StringVar(&addSubscriberInput.Ki, "ki", "", "The raw key as hexstr usualy 16 bytes as 32 characters")
	f.StringVar(&addSubscriberInput.OPc, "opc", "", "The OPc key as hexstr usualy 16 bytes as 32 characters")
	f.StringVar(&addSubscriberInput.OP, "op", "", "The OP key as hexstr usualy 16 bytes as 32 characters. More common is to specify an OPc instead of a OP")
	f.Int64Var(&addSubscriberInput.SQN, "sqn", 0, "Sequence number")
	f.StringVar(&addSubscriberInput.ICCID, "iccid", "", "ICCID of the subscriber")
	f.StringVar(&addSubscriberInput.MSISDN, "msisdn", "", "MSISDN of the subscriber")
	f.StringVar(&addSubscriberInput.DefaultAPN, "default-apn", "", "Default APN of the subscriber")
	f.StringArrayVar(&addSubscriberInput.APNs, "apn", nil, "Add APN to the allowed list (repeatable)")
	f.BoolVar(&addSubscriberInput.RemoveOldAUC, "remove-old-auc", false, "Remove old AUC entry if already present")

	cobra.CheckErr(addSubscriberCmd.MarkFlagRequired("ki"))
	cobra.CheckErr(addSubscriberCmd.MarkFlagRequired("default-apn"))

	rootCmd.AddCommand(addSubscriberCmd)
}
