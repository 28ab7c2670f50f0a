package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lynxis/pyhss-cli/internal/provision"
)

var addAPNInput provision.AddAPNInput

// addAPNCmd はAPNプロファイルを登録する。
var addAPNCmd = &cobra.Command{
	Use:   "add-apn APN",
	Short: "Add an APN profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addAPNInput.Name = args[0]

		apn, err := provisioner.AddAPN(cmd.Context(), &addAPNInput)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "APN %s added under id: %d\n", args[0], apn.APNID)
		return nil
	},
}

func init() {
	f := addAPNCmd.Flags()
	f.StringVar(&addAPNInput.AmbrDL, "dl", "150mbit", "The maximum APN bandwidth downlink (towards phone) (AMBR DL)")
	f.StringVar(&addAPNInput.AmbrUL, "ul", "50mbit", "The maximum APN bandwidth uplink (towards network) (AMBR UL)")
	f.IntVar(&addAPNInput.QCI, "qci", 9, "QCI value")
	f.IntVar(&addAPNInput.ARPPriority, "arp", 9, "ARP priority")
	f.BoolVar(&addAPNInput.PreemptionCapability, "preemption-cap", false, "APN has (ARP) preemption capability. It can preempt other PDNs to get more bandwidth")
	f.BoolVar(&addAPNInput.PreemptionVulnerability, "preemption-vuln", true, "APN is (ARP) preemption vulnerable. It can be preemted and other PDNs will get more bandwdith")

	rootCmd.AddCommand(addAPNCmd)
}
