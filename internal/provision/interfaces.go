package provision

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=provision

import (
	"context"

	"github.com/lynxis/pyhss-cli/internal/hss"
)

// Gateway はPyHSS APIのエンティティ別CRUD境界を定義する。
// キー付き参照は未登録時に (nil, nil) を返す。
type Gateway interface {
	GetSubscriberByIMSI(ctx context.Context, imsi string) (*hss.Subscriber, error)
	ListSubscribers(ctx context.Context, page, pageSize int) ([]hss.Subscriber, error)
	PutSubscriber(ctx context.Context, entry *hss.SubscriberEntry) (*hss.Subscriber, error)
	DeleteSubscriber(ctx context.Context, id int) error

	GetAUCByIMSI(ctx context.Context, imsi string) (*hss.AUC, error)
	PutAUC(ctx context.Context, entry *hss.AUCEntry) (*hss.AUC, error)
	DeleteAUC(ctx context.Context, id int) error

	ListAPNs(ctx context.Context) ([]hss.APN, error)
	PutAPN(ctx context.Context, entry *hss.APNEntry) (*hss.APN, error)
	DeleteAPN(ctx context.Context, id int) error

	GetIMSSubscriberByIMSI(ctx context.Context, imsi string) (*hss.IMSSubscriber, error)
	GetIMSSubscriberByMSISDN(ctx context.Context, msisdn string) (*hss.IMSSubscriber, error)
	ListIMSSubscribers(ctx context.Context, page, pageSize int) ([]hss.IMSSubscriber, error)
	PutIMSSubscriber(ctx context.Context, entry *hss.IMSSubscriberEntry) (*hss.IMSSubscriber, error)
	DeleteIMSSubscriber(ctx context.Context, id int) error
}
