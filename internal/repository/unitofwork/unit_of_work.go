package unitofwork

import (
	"context"

	"github.com/maatalaayoub/L9ani-sub001/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ReportRepository() contract.ReportRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
