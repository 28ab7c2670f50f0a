package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lynxis/pyhss-cli/internal/config"
	"github.com/lynxis/pyhss-cli/internal/hss"
)

// brief表示で出すフィールド。
var subscriberBriefFields = []string{
	"ue_ambr_dl",
	"ue_ambr_ul",
	"default_apn",
	"msisdn",
	"enabled",
	"roaming_enabled",
}

var (
	listSubIMSI  string
	listSubLong  bool
	listSubBrief bool
	listSubIOnly bool
	listSubLimit int
	listSubPage  int
)

var listSubscribersCmd = &cobra.Command{
	Use:   "list-subscribers",
	Short: "List subscribers",
	Long: `List subscribers.

The brief output shows AMBR, MSISDN, enabled, roaming_enabled, default_apn.
The long output shows all properties.
The imsi output shows only a single line per subscriber.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		var subscribers []hss.Subscriber
		if listSubIMSI != "" {
			sub, err := gateway.GetSubscriberByIMSI(ctx, listSubIMSI)
			if err != nil {
				return fmt.Errorf("failed to get the subscriber %s: %w", listSubIMSI, err)
			}
			if sub == nil {
				return fmt.Errorf("couldn't find subscriber %s", listSubIMSI)
			}
			subscribers = []hss.Subscriber{*sub}
		} else {
			var err error
			subscribers, err = gateway.ListSubscribers(ctx, listSubPage, listSubLimit)
			if err != nil {
				return fmt.Errorf("failed to list subscribers: %w", err)
			}
		}

		mode := resolveDisplayMode(listSubLong, listSubBrief, listSubIOnly, listSubIMSI != "")
		out := cmd.OutOrStdout()
		for _, sub := range subscribers {
			switch mode {
			case displayLong:
				if err := printEntityLong(out, "imsi", sub); err != nil {
					return err
				}
			case displayBrief:
				if err := printEntityBrief(out, "imsi", sub, subscriberBriefFields); err != nil {
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
	f := listSubscribersCmd.Flags()
	f.StringVar(&listSubIMSI, "imsi", "", "Show only a single subscriber")
	f.BoolVarP(&listSubLong, "long", "l", false, "Long output, show all fields")
	f.BoolVarP(&listSubBrief, "brief", "b", false, "Brief output, show AMBR, MSISDN, enabled, roaming_enabled, default_apn")
	f.BoolVarP(&listSubIOnly, "imsi-only", "i", false, "Show only the imsi of a subscriber")
	f.IntVar(&listSubLimit, "limit", config.DefaultListLimit, "Limit output of subscribers")
	f.IntVar(&listSubPage, "page", config.DefaultListPage, "Page through subscribers")

	rootCmd.AddCommand(listSubscribersCmd)
}
