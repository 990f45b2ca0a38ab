package contract

import (
	"context"

	"github.com/maatalaayoub/L9ani-sub001/internal/entity"
	"github.com/maatalaayoub/L9ani-sub001/internal/repository/specification"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
