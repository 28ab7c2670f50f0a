package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lynxis/pyhss-cli/internal/config"
	"github.com/lynxis/pyhss-cli/internal/hss"
)

var imsSubscriberBriefFields = []string{
	"imsi",
	"msisdn",
	"msisdn_list",
	"pcscf",
	"scscf",
	"scscf_timestamp",
}

var (
	listIMSIMSI   string
	listIMSMSISDN string
	listIMSLong   bool
	listIMSBrief  bool
	listIMSIOnly  bool
	listIMSLimit  int
	listIMSPage   int
)

var listIMSSubscribersCmd = &cobra.Command{
	Use:   "list-ims-subscribers",
	Short: "List IMS subscribers",
	Long: `List IMS subscribers.

The brief output shows IMSI, MSISDN and CSCF assignment.
The long output shows all properties.
The imsi output shows only a single line per subscriber.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if listIMSIMSI != "" && listIMSMSISDN != "" {
			return fmt.Errorf("can't use both --imsi and --msisdn to filter for an IMS subscriber")
		}

		ctx := cmd.Context()

		var subscribers []hss.IMSSubscriber
		switch {
		case listIMSIMSI != "":
			sub, err := gateway.GetIMSSubscriberByIMSI(ctx, listIMSIMSI)
			if err != nil {
				return fmt.Errorf("failed to get the IMS subscriber %s: %w", listIMSIMSI, err)
			}
			if sub == nil {
				return fmt.Errorf("couldn't find subscriber by IMSI %s", listIMSIMSI)
			}
			subscribers = []hss.IMSSubscriber{*sub}
		case listIMSMSISDN != "":
			sub, err := gateway.GetIMSSubscriberByMSISDN(ctx, listIMSMSISDN)
			if err != nil {
				return fmt.Errorf("failed to get the IMS subscriber by MSISDN %s: %w", listIMSMSISDN, err)
			}
			if sub == nil {
				return fmt.Errorf("couldn't find subscriber by MSISDN %s", listIMSMSISDN)
			}
			subscribers = []hss.IMSSubscriber{*sub}
		default:
			var err error
			subscribers, err = gateway.ListIMSSubscribers(ctx, listIMSPage, listIMSLimit)
			if err != nil {
				return fmt.Errorf("failed to list IMS subscribers: %w", err)
			}
		}

		filtered := listIMSIMSI != "" || listIMSMSISDN != ""
		mode := resolveDisplayMode(listIMSLong, listIMSBrief, listIMSIOnly, filtered)
		out := cmd.OutOrStdout()
		for _, sub := range subscribers {
			switch mode {
			case displayLong:
				if err := printEntityLong(out, "imsi", sub); err != nil {
					return err
				}
			case displayBrief:
				if err := printEntityBrief(out, "imsi", sub, imsSubscriberBriefFields); err != nil {
					return err
				}
			case displayKey:
				fmt.Fprintln(out, sub.IMSI)
			}
		}
		return nil
	},
}

func init() {
	f := listIMSSubscribersCmd.Flags()
	f.StringVar(&listIMSIMSI, "imsi", "", "Show only a single subscriber by IMSI")
	f.StringVar(&listIMSMSISDN, "msisdn", "", "Show only a single subscriber by MSISDN")
	f.BoolVarP(&listIMSLong, "long", "l", false, "Long output, show all fields")
	f.BoolVarP(&listIMSBrief, "brief", "b", false, "Brief output, show IMSI, MSISDN and CSCF assignment")
	f.BoolVarP(&listIMSIOnly, "imsi-only", "i", false, "Show only the imsi of a subscriber")
	f.IntVar(&listIMSLimit, "limit", config.DefaultListLimit, "Limit output of subscribers")
	f.IntVar(&listIMSPage, "page", config.DefaultListPage, "Page through subscribers")

	rootCmd.AddCommand(listIMSSubscribersCmd)
}
