package provision

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lynxis/pyhss-cli/internal/hss"
	"github.com/lynxis/pyhss-cli/internal/validation"
)

// AddIMSSubscriberInput はIMS加入者追加ワークフローの入力。
type AddIMSSubscriberInput struct {
	IMSI    string
	MSISDNs []string // 1つ以上必須。先頭が主番号、残りが副番号リスト。
}

// AddIMSSubscriber はIMS加入者レコードを追加する。
// 同一IMSIの加入者レコードが前提条件として必要になる。
func (p *Provisioner) AddIMSSubscriber(ctx context.Context, in *AddIMSSubscriberInput) (*hss.IMSSubscriber, error) {
	if err := validation.ValidateIMSI(in.IMSI); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if len(in.MSISDNs) == 0 {
		return nil, fmt.Errorf("%w: at least one MSISDN is required", ErrInvalidArgument)
	}

	// 前提条件: ベースとなる加入者レコードの存在確認。
	// 不在はConflictではなく参照前提の欠落として扱う。
	sub, err := p.gw.GetSubscriberByIMSI(ctx, in.IMSI)
	if err != nil {
		return nil, fmt.Errorf("failed to get the subscriber %s: %w", in.IMSI, err)
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: couldn't find the subscriber %s in the subscriber DB, please add the subscriber with add-subscriber", ErrPreconditionFailed, in.IMSI)
	}

	ims, err := p.gw.PutIMSSubscriber(ctx, &hss.IMSSubscriberEntry{
		IMSI:       in.IMSI,
		MSISDN:     in.MSISDNs[0],
		MSISDNList: hss.MSISDNList(in.MSISDNs[1:]),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add the IMS subscriber %s: %w", in.IMSI, err)
	}

	slog.Info("ims subscriber added",
		"event_id", "IMS_SUB_ADDED",
		"imsi", p.masker.IMSI(in.IMSI),
		"ims_subscriber_id", ims.IMSSubscriberID,
	)
	return ims, nil
}

// RemoveIMSSubscriber はIMSIでIMS加入者レコードを削除する。
func (p *Provisioner) RemoveIMSSubscriber(ctx context.Context, imsi string) (int, error) {
	if err := validation.ValidateIMSI(imsi); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	ims, err := p.gw.GetIMSSubscriberByIMSI(ctx, imsi)
	if err != nil {
		return 0, fmt.Errorf("failed to get the IMS subscriber %s: %w", imsi, err)
	}
	if ims == nil {
		return 0, fmt.Errorf("%w: couldn't find IMS subscriber %s", ErrNotFound, imsi)
	}

	if err := p.gw.DeleteIMSSubscriber(ctx, ims.IMSSubscriberID); err != nil {
		return 0, fmt.Errorf("failed to remove IMS subscriber %s: %w", imsi, err)
	}

	slog.Info("ims subscriber removed",
		"event_id", "IMS_SUB_REMOVED",
		"imsi", p.masker.IMSI(imsi),
		"ims_subscriber_id", ims.IMSSubscriberID,
	)
	return ims.IMSSubscriberID, nil
}
