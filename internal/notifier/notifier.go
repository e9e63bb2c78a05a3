package notifier

import (
	"context"

	"github.com/mysteryidea/ledgerd/internal/logger"
	"github.com/mysteryidea/ledgerd/internal/models"
	"go.uber.org/zap"
)

// Notifier is invoked fire-and-forget after a settlement commits; a
// failed notification must never undo a ledger mutation, so callers
// log errors and move on.
type Notifier interface {
	PurchaseConfirmed(ctx context.Context, buyer models.User, idea models.Idea, purchase models.Purchase) error
	SaleCompleted(ctx context.Context, creator models.User, buyer models.User, idea models.Idea, purchase models.Purchase) error
}

// LogNotifier records notifications in the service log. The real email
// dispatcher lives outside this service and consumes the same log
// stream.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) PurchaseConfirmed(_ context.Context, buyer models.User, idea models.Idea, purchase models.Purchase) error {
	logger.Log.Info("purchase confirmation notification",
		zap.String("buyer_email", buyer.Email),
		zap.String("idea_title", idea.Title),
		zap.Int64("amount_in_cents", purchase.AmountInCents),
	)
	return nil
}

func (n *LogNotifier) SaleCompleted(_ context.Context, creator models.User, buyer models.User, idea models.Idea, purchase models.Purchase) error {
	logger.Log.Info("sale notification",
		zap.String("creator_email", creator.Email),
		zap.String("buyer_name", buyer.Name),
		zap.String("idea_title", idea.Title),
		zap.Int64("amount_in_cents", purchase.AmountInCents),
		zap.Int64("platform_fee_in_cents", purchase.PlatformFeeInCents),
	)
	return nil
}
