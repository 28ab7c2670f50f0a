package provision

import (
	"context"
	"fmt"

	"github.com/lynxis/pyhss-cli/internal/hss"
)

// resolveAPN はAPN名を内部IDに解決する。
// PyHSSには名前キーの参照エンドポイントがないため、全件取得して
// クライアント側で大文字小文字を区別した完全一致の線形走査を行う。
// 最初に一致したエントリを返し、見つからなければ (nil, nil) を返す。
// 呼び出しごとに全件を取り直す（N個の名前解決 = N回の全件取得）。
func (p *Provisioner) resolveAPN(ctx context.Context, name string) (*hss.APN, error) {
	apns, err := p.gw.ListAPNs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get the list of APNs: %w", err)
	}

	for i := range apns {
		if apns[i].APN == name {
			return &apns[i], nil
		}
	}
	return nil, nil
}
