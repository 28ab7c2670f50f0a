package provision

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lynxis/pyhss-cli/internal/hss"
	"github.com/lynxis/pyhss-cli/internal/validation"
)

// AddSubscriberInput は加入者追加ワークフローの入力。
type AddSubscriberInput struct {
	IMSI         string
	Ki           string
	OPc          string // OPとは排他。どちらか一方が必須。
	OP           string
	SQN          int64
	ICCID        string
	MSISDN       string
	DefaultAPN   string   // APN名。IDへの解決はワークフロー内で行う。
	APNs         []string // 許可リストに入れる追加APN名。
	RemoveOldAUC bool
}

// AddSubscriberResult は加入者追加ワークフローの結果。
type AddSubscriberResult struct {
	SubscriberID int
	AUCID        int
}

// AddSubscriber は加入者をAUCと加入者データベースに追加する。
//
// 状態遷移: 引数検証 → デフォルトAPN解決 → APNリスト解決 →
// 加入者競合確認 → AUC競合確認（必要なら旧エントリ削除） →
// AUC作成 → 加入者作成。
// 加入者作成が失敗した場合、直前に作成したAUCレコードは残る。
func (p *Provisioner) AddSubscriber(ctx context.Context, in *AddSubscriberInput) (*AddSubscriberResult, error) {
	if err := validateAddSubscriber(in); err != nil {
		return nil, err
	}

	// デフォルトAPN解決
	defaultAPN, err := p.resolveAPN(ctx, in.DefaultAPN)
	if err != nil {
		return nil, err
	}
	if defaultAPN == nil {
		return nil, fmt.Errorf("%w: could not find the default apn %q, please add it first via add-apn", ErrNotFound, in.DefaultAPN)
	}

	// 許可APNリスト解決。デフォルトAPNのIDはリストに含めない。
	apnIDs := make(hss.APNList, 0, len(in.APNs))
	for _, name := range in.APNs {
		apn, err := p.resolveAPN(ctx, name)
		if err != nil {
			return nil, err
		}
		if apn == nil {
			return nil, fmt.Errorf("%w: could not find the given --apn %q, please add it first via add-apn", ErrNotFound, name)
		}
		apnIDs = append(apnIDs, apn.APNID)
	}

	// 競合確認（読み取りのみ）
	if err := p.checkSubscriberAbsent(ctx, in.IMSI); err != nil {
		return nil, err
	}
	if err := p.ensureAUCSlot(ctx, in.IMSI, in.RemoveOldAUC); err != nil {
		return nil, err
	}

	// AUC作成。AMFは固定値、SQNは入力（デフォルト0）。
	auc, err := p.gw.PutAUC(ctx, &hss.AUCEntry{
		IMSI:  in.IMSI,
		Ki:    in.Ki,
		OPc:   in.OPc,
		OP:    in.OP,
		AMF:   defaultAMF,
		SQN:   in.SQN,
		ICCID: in.ICCID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add the subscriber %s to the AUC: %w", in.IMSI, err)
	}

	// 加入者作成。ここで失敗すると作成済みのAUCレコードが残る。
	sub, err := p.gw.PutSubscriber(ctx, &hss.SubscriberEntry{
		AUCID:          auc.AUCID,
		IMSI:           in.IMSI,
		Enabled:        true,
		DefaultAPN:     defaultAPN.APNID,
		RoamingEnabled: true,
		APNList:        apnIDs,
		MSISDN:         in.MSISDN,
	})
	if err != nil {
		slog.Warn("subscriber creation failed after AUC creation, AUC entry remains",
			"event_id", "SUB_CREATE_ORPHAN_AUC",
			"imsi", p.masker.IMSI(in.IMSI),
			"auc_id", auc.AUCID,
		)
		return nil, fmt.Errorf("failed to add the subscriber %s: %w", in.IMSI, err)
	}

	slog.Info("subscriber added",
		"event_id", "SUB_ADDED",
		"imsi", p.masker.IMSI(in.IMSI),
		"subscriber_id", sub.SubscriberID,
		"auc_id", auc.AUCID,
	)
	return &AddSubscriberResult{SubscriberID: sub.SubscriberID, AUCID: auc.AUCID}, nil
}

// RemoveSubscriber は加入者レコードを削除する。
// 対応するAUCレコードは削除しない（カスケード削除なし）。
func (p *Provisioner) RemoveSubscriber(ctx context.Context, imsi string) (int, error) {
	if err := validation.ValidateIMSI(imsi); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	sub, err := p.gw.GetSubscriberByIMSI(ctx, imsi)
	if err != nil {
		return 0, fmt.Errorf("failed to get the subscriber %s: %w", imsi, err)
	}
	if sub == nil {
		return 0, fmt.Errorf("%w: couldn't find subscriber %s", ErrNotFound, imsi)
	}

	if err := p.gw.DeleteSubscriber(ctx, sub.SubscriberID); err != nil {
		return 0, fmt.Errorf("failed to remove subscriber %s: %w", imsi, err)
	}

	slog.Info("subscriber removed",
		"event_id", "SUB_REMOVED",
		"imsi", p.masker.IMSI(imsi),
		"subscriber_id", sub.SubscriberID,
	)
	return sub.SubscriberID, nil
}

// validateAddSubscriber は加入者追加の入力を検証する。I/Oは発生しない。
func validateAddSubscriber(in *AddSubscriberInput) error {
	if err := validation.ValidateIMSI(in.IMSI); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if err := validation.ValidateKey("Ki", in.Ki); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	if in.OPc != "" && in.OP != "" {
		return fmt.Errorf("%w: can't specify both OP and OPc", ErrInvalidArgument)
	}
	if in.OPc == "" && in.OP == "" {
		return fmt.Errorf("%w: require either OP or OPc", ErrInvalidArgument)
	}
	if in.OPc != "" {
		if err := validation.ValidateKey("OPc", in.OPc); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
	}
	if in.OP != "" {
		if err := validation.ValidateKey("OP", in.OP); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
	}

	if in.DefaultAPN == "" {
		return fmt.Errorf("%w: default APN is required", ErrInvalidArgument)
	}
	return nil
}
