package provision

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lynxis/pyhss-cli/internal/format"
	"github.com/lynxis/pyhss-cli/internal/hss"
)

// AddAPNInput はAPNプロファイル追加の入力。
type AddAPNInput struct {
	Name                    string
	AmbrDL                  string // 帯域文字列（例: "150mbit"）
	AmbrUL                  string
	QCI                     int
	ARPPriority             int
	PreemptionCapability    bool
	PreemptionVulnerability bool
}

// AddAPN はAPNプロファイルを追加する。
// 同名のAPNが既に存在する場合はConflictになる。
func (p *Provisioner) AddAPN(ctx context.Context, in *AddAPNInput) (*hss.APN, error) {
	dl, err := format.ParseBandwidth(in.AmbrDL)
	if err != nil {
		return nil, fmt.Errorf("%w: --dl: %v", ErrInvalidArgument, err)
	}
	ul, err := format.ParseBandwidth(in.AmbrUL)
	if err != nil {
		return nil, fmt.Errorf("%w: --ul: %v", ErrInvalidArgument, err)
	}

	existing, err := p.resolveAPN(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: APN %s already exists (apn_id: %d)", ErrConflict, in.Name, existing.APNID)
	}

	apn, err := p.gw.PutAPN(ctx, &hss.APNEntry{
		APN:                        in.Name,
		APNAmbrDL:                  dl,
		APNAmbrUL:                  ul,
		QCI:                        in.QCI,
		ARPPriority:                in.ARPPriority,
		ARPPreemptionCapability:    in.PreemptionCapability,
		ARPPreemptionVulnerability: in.PreemptionVulnerability,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add the APN %s: %w", in.Name, err)
	}

	slog.Info("apn added",
		"event_id", "APN_ADDED",
		"apn", in.Name,
		"apn_id", apn.APNID,
	)
	return apn, nil
}

// RemoveAPN は名前でAPNプロファイルを削除する。
func (p *Provisioner) RemoveAPN(ctx context.Context, name string) (int, error) {
	apn, err := p.resolveAPN(ctx, name)
	if err != nil {
		return 0, err
	}
	if apn == nil {
		return 0, fmt.Errorf("%w: couldn't find apn %s", ErrNotFound, name)
	}

	if err := p.gw.DeleteAPN(ctx, apn.APNID); err != nil {
		return 0, fmt.Errorf("failed to remove apn %s: %w", name, err)
	}

	slog.Info("apn removed",
		"event_id", "APN_REMOVED",
		"apn", name,
		"apn_id", apn.APNID,
	)
	return apn.APNID, nil
}

// ResolveAPNByName はAPN名を解決して返す。一覧表示のフィルタで使う。
// 見つからなければ (nil, nil) を返す。
func (p *Provisioner) ResolveAPNByName(ctx context.Context, name string) (*hss.APN, error) {
	return p.resolveAPN(ctx, name)
}
