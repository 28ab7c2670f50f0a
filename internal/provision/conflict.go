package provision

import (
	"context"
	"fmt"
	"log/slog"
)

// checkSubscriberAbsent は加入者レコードが未登録であることを確認する。
// 加入者には上書きの手段がないため、既存レコードは常にConflictになる。
func (p *Provisioner) checkSubscriberAbsent(ctx context.Context, imsi string) error {
	sub, err := p.gw.GetSubscriberByIMSI(ctx, imsi)
	if err != nil {
		return fmt.Errorf("failed to get the subscriber %s: %w", imsi, err)
	}
	if sub != nil {
		return fmt.Errorf("%w: subscriber %s already exists in subscriber database", ErrConflict, imsi)
	}
	return nil
}

// ensureAUCSlot はAUCレコードの作成先を確保する。
// 既存レコードがある場合、removeOld=falseならConflict、trueなら先に削除する。
// 削除の失敗（トランスポートエラーと失敗マーカーの両方）はワークフローを打ち切る。
func (p *Provisioner) ensureAUCSlot(ctx context.Context, imsi string, removeOld bool) error {
	auc, err := p.gw.GetAUCByIMSI(ctx, imsi)
	if err != nil {
		return fmt.Errorf("failed to get the subscriber %s from AUC: %w", imsi, err)
	}
	if auc == nil {
		return nil
	}

	if !removeOld {
		return fmt.Errorf("%w: subscriber %s already exists in AUC database, use --remove-old-auc to override", ErrConflict, imsi)
	}

	slog.Info("removing old AUC entry",
		"event_id", "AUC_REMOVE_OLD",
		"imsi", p.masker.IMSI(imsi),
		"auc_id", auc.AUCID,
	)
	if err := p.gw.DeleteAUC(ctx, auc.AUCID); err != nil {
		return fmt.Errorf("failed to remove AUC entry id %d: %w", auc.AUCID, err)
	}
	return nil
}
