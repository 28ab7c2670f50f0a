package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lynxis/pyhss-cli/internal/hss"
)

var apnBriefFields = []string{
	"apn_id",
	"apn_ambr_dl",
	"apn_ambr_ul",
	"arp_preemption_capability",
	"arp_preemption_vulnerability",
	"arp_priority",
	"qci",
}

var (
	listAPNName   string
	listAPNLong   bool
	listAPNBrief  bool
	listAPNIDOnly bool
)

var listAPNsCmd = &cobra.Command{
	Use:   "list-apns",
	Short: "List all APNs",
	Long: `List all APNs.

The brief output shows AMBR, QCI, ARP.
The long output shows all properties.
The id output shows only a single line per APN.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		var apns []hss.APN
		if listAPNName != "" {
			apn, err := provisioner.ResolveAPNByName(ctx, listAPNName)
			if err != nil {
				return fmt.Errorf("failed to get the APN %s: %w", listAPNName, err)
			}
			if apn == nil {
				return fmt.Errorf("couldn't find APN %s", listAPNName)
			}
			apns = []hss.APN{*apn}
		} else {
			var err error
			apns, err = gateway.ListAPNs(ctx)
			if err != nil {
				return fmt.Errorf("failed to list apns: %w", err)
			}
		}

		mode := resolveDisplayMode(listAPNLong, listAPNBrief, listAPNIDOnly, listAPNName != "")
		out := cmd.OutOrStdout()
		for _, apn := range apns {
			switch mode {
			case displayLong:
				if err := printEntityLong(out, "apn", apn); err != nil {
					return err
				}
			case displayBrief:
				if err := printEntityBrief(out, "apn", apn, apnBriefFields); err != nil {
					return err
				}
			case displayKey:
				fmt.Fprintf(out, "%s: id %d\n", apn.APN, apn.APNID)
			}
		}
		return nil
	},
}

func init() {
	f := listAPNsCmd.Flags()
	f.StringVar(&listAPNName, "apn", "", "Show only this APN")
	f.BoolVarP(&listAPNLong, "long", "l", false, "Long output, show all fields")
	f.BoolVarP(&listAPNBrief, "brief", "b", false, "Brief output, show AMBR, QCI, ARP")
	f.BoolVarP(&listAPNIDOnly, "id-only", "i", false, "Show only the id of the APN")

	rootCmd.AddCommand(listAPNsCmd)
}
