package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lynxis/pyhss-cli/internal/hss"
)

func TestResolveDisplayMode(t *testing.T) {
	tests := []struct {
		name     string
		long     bool
		brief    bool
		keyOnly  bool
		filtered bool
		want     displayMode
	}{
		{name: "explicit long", long: true, want: displayLong},
		{name: "explicit brief", brief: true, want: displayBrief},
		{name: "explicit key", keyOnly: true, want: displayKey},
		{name: "long wins over brief", long: true, brief: true, want: displayLong},
		{name: "filtered defaults to brief", filtered: true, want: displayBrief},
		{name: "unfiltered defaults to key", want: displayKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveDisplayMode(tt.long, tt.brief, tt.keyOnly, tt.filtered)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPrintEntityLong(t *testing.T) {
	apn := hss.APN{
		APNID:       3,
		APN:         "internet",
		APNAmbrDL:   150000000,
		APNAmbrUL:   50000000,
		QCI:         9,
		ARPPriority: 9,
	}

	var buf strings.Builder
	require.NoError(t, printEntityLong(&buf, "apn", apn))

	out := buf.String()
	require.Contains(t, out, "internet, apn_id: 3\n")
	require.Contains(t, out, "internet, apn_ambr_dl: 150000000\n")
	require.Contains(t, out, "internet, qci: 9\n")
	// キー項目自体は行として出さない
	require.NotContains(t, out, "internet, apn: internet")
}

func TestPrintEntityBrief(t *testing.T) {
	sub := hss.Subscriber{
		SubscriberID:   7,
		IMSI:           "001010123456789",
		AUCID:          42,
		DefaultAPN:     3,
		APNList:        hss.APNList{3, 4},
		Enabled:        true,
		RoamingEnabled: true,
	}

	var buf strings.Builder
	require.NoError(t, printEntityBrief(&buf, "imsi", sub, subscriberBriefFields))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, len(subscriberBriefFields))
	require.Contains(t, out, "001010123456789, default_apn: 3\n")
	require.Contains(t, out, "001010123456789, enabled: true\n")
	// msisdnはomitemptyで欠けるので空値で出す
	require.Contains(t, out, "001010123456789, msisdn: \n")
	// briefモードではsubscriber_idは出さない
	require.NotContains(t, out, "subscriber_id")
}
