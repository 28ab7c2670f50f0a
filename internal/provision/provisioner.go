// Package provision はPyHSSに対する複数エンティティのプロビジョニングを編成する。
//
// リモートストアはエンティティ単位のCRUDしか提供せず、トランザクションは
// 存在しない。各ワークフローは「ローカル検証 → 読み取り参照 → 固定順の書き込み」
// の直列な状態遷移として実装し、途中で失敗した場合はそこで打ち切る。
// 既に書き込まれたレコードのロールバックは行わない。
package provision

import (
	"github.com/lynxis/pyhss-cli/internal/logging"
)

// AMF定数。E-UTRANでは0x8000が要求されるため利用者からは設定できない。
const defaultAMF = "8000"

// Provisioner はプロビジョニングワークフローを実装する。
type Provisioner struct {
	gw     Gateway
	masker *logging.Masker
}

// NewProvisioner は新しいProvisionerを生成する。
func NewProvisioner(gw Gateway, masker *logging.Masker) *Provisioner {
	if masker == nil {
		masker = logging.NewMasker(false)
	}
	return &Provisioner{gw: gw, masker: masker}
}
