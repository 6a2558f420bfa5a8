package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armahcreates/iwil/internal/api/dto"
	"github.com/armahcreates/iwil/internal/repository"
)

// ClientsHandler lists wellness clients.
type ClientsHandler struct {
	clients repository.ClientRepository
}

// NewClientsHandler constructs the handler.
func NewClientsHandler(clients repository.ClientRepository) *ClientsHandler {
	return &ClientsHandler{clients: clients}
}

// List handles GET /api/clients.
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	if err := h.clients.EnsureSchema(c.Context()); err != nil {
		return err
	}
	clients, err := h.clients.List(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		resp = append(resp, dto.NewClientResponse(&clients[i]))
	}
	return c.JSON(resp)
}
