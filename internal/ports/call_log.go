package ports

import (
	"context"

	"github.com/bnema/paladins-stats-cli/internal/domain"
)

type CallRecorder interface {
	RecordCall(ctx context.Context, call domain.APICall) error
}

type CallLog interface {
	CallRecorder
	RecentCalls(ctx context.Context, limit int) ([]domain.APICall, error)
}
