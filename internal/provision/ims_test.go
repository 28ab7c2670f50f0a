package provision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lynxis/pyhss-cli/internal/hss"
)

// MSISDNなしのIMS加入者追加はネットワーク呼び出しなしで拒否される。
func TestAddIMSSubscriberRequiresMSISDN(t *testing.T) {
	p, _ := newTestProvisioner(t)

	_, err := p.AddIMSSubscriber(context.Background(), &AddIMSSubscriberInput{IMSI: testIMSI})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// ベースの加入者レコードがない場合は前提条件エラー。書き込みは行わない。
func TestAddIMSSubscriberMissingBaseSubscriber(t *testing.T) {
	p, gw := newTestProvisioner(t)

	gw.EXPECT().GetSubscriberByIMSI(gomock.Any(), testIMSI).Return(nil, nil)

	_, err := p.AddIMSSubscriber(context.Background(), &AddIMSSubscriberInput{
		IMSI:    testIMSI,
		MSISDNs: []string{"4912345678"},
	})
	require.ErrorIs(t, err, ErrPreconditionFailed)
	require.Contains(t, err.Error(), "add-subscriber")
}

// 先頭のMSISDNが主番号、残りが副番号リストになる。
func TestAddIMSSubscriberSplitsMSISDNs(t *testing.T) {
	p, gw := newTestProvisioner(t)

	gw.EXPECT().GetSubscriberByIMSI(gomock.Any(), testIMSI).
		Return(&hss.Subscriber{SubscriberID: 7, IMSI: testIMSI}, nil)

	var entry *hss.IMSSubscriberEntry
	gw.EXPECT().PutIMSSubscriber(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *hss.IMSSubscriberEntry) (*hss.IMSSubscriber, error) {
			entry = e
			return &hss.IMSSubscriber{IMSSubscriberID: 5, IMSI: e.IMSI}, nil
		})

	ims, err := p.AddIMSSubscriber(context.Background(), &AddIMSSubscriberInput{
		IMSI:    testIMSI,
		MSISDNs: []string{"4912345678", "4912345679", "4912345680"},
	})
	require.NoError(t, err)
	require.Equal(t, 5, ims.IMSSubscriberID)

	require.Equal(t, "4912345678", entry.MSISDN)
	require.Equal(t, hss.MSISDNList{"4912345679", "4912345680"}, entry.MSISDNList)
	require.Equal(t, "4912345679,4912345680", entry.MSISDNList.String())
}

// MSISDNが1つだけの場合、副番号リストは空。
func TestAddIMSSubscriberSingleMSISDN(t *testing.T) {
	p, gw := newTestProvisioner(t)

	gw.EXPECT().GetSubscriberByIMSI(gomock.Any(), testIMSI).
		Return(&hss.Subscriber{SubscriberID: 7, IMSI: testIMSI}, nil)

	var entry *hss.IMSSubscriberEntry
	gw.EXPECT().PutIMSSubscriber(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *hss.IMSSubscriberEntry) (*hss.IMSSubscriber, error) {
			entry = e
			return &hss.IMSSubscriber{IMSSubscriberID: 5}, nil
		})

	_, err := p.AddIMSSubscriber(context.Background(), &AddIMSSubscriberInput{
		IMSI:    testIMSI,
		MSISDNs: []string{"4912345678"},
	})
	require.NoError(t, err)
	require.Equal(t, "4912345678", entry.MSISDN)
	require.Empty(t, entry.MSISDNList)
}

func TestRemoveIMSSubscriberNotFound(t *testing.T) {
	p, gw := newTestProvisioner(t)

	gw.EXPECT().GetIMSSubscriberByIMSI(gomock.Any(), testIMSI).Return(nil, nil)

	_, err := p.RemoveIMSSubscriber(context.Background(), testIMSI)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveIMSSubscriberSuccess(t *testing.T) {
	p, gw := newTestProvisioner(t)

	gw.EXPECT().GetIMSSubscriberByIMSI(gomock.Any(), testIMSI).
		Return(&hss.IMSSubscriber{IMSSubscriberID: 5, IMSI: testIMSI}, nil)
	gw.EXPECT().DeleteIMSSubscriber(gomock.Any(), 5).Return(nil)

	id, err := p.RemoveIMSSubscriber(context.Background(), testIMSI)
	require.NoError(t, err)
	require.Equal(t, 5, id)
}

// IMS削除でも失敗マーカーは失敗として伝播する。
func TestRemoveIMSSubscriberFailedMarker(t *testing.T) {
	p, gw := newTestProvisioner(t)

	gw.EXPECT().GetIMSSubscriberByIMSI(gomock.Any(), testIMSI).
		Return(&hss.IMSSubscriber{IMSSubscriberID: 5, IMSI: testIMSI}, nil)
	gw.EXPECT().DeleteIMSSubscriber(gomock.Any(), 5).
		Return(&hss.DeleteResultError{Entity: "ims_subscriber", ID: 5, Result: map[string]any{"Result": "FAIL"}})

	_, err := p.RemoveIMSSubscriber(context.Background(), testIMSI)
	require.ErrorIs(t, err, hss.ErrInvalidResponse)
}
