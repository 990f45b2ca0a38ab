package controller

import (
	"github.com/maatalaayoub/L9ani-sub001/internal/dto"
	"github.com/maatalaayoub/L9ani-sub001/internal/pkg/serverutils"
	"github.com/maatalaayoub/L9ani-sub001/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	// Chat works anonymously; a token just attaches the user's identity.
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Post("chat", c.Chat)
	h.Get("chat/:conversationId/history", c.History)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	userId := optionalUserId(ctx)

	res, err := c.assistantService.Chat(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat", res))
}

func (c *assistantController) History(ctx *fiber.Ctx) error {
	conversationId := ctx.Params("conversationId")
	if conversationId == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing conversation id"))
	}

	res, err := c.assistantService.History(ctx.Context(), conversationId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat history", res))
}

// optionalUserId reads the user id the optional JWT middleware may have
// set. Anonymous chat turns simply get nil.
func optionalUserId(ctx *fiber.Ctx) *uuid.UUID {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return nil
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return nil
	}
	return &userId
}
