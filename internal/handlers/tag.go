package handlers

import (
	"ledgerly/internal/services/tag"
	"ledgerly/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TagHandler struct {
	tagService tag.Service
}

func NewTagHandler(tagService tag.Service) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) ListTags(c *fiber.Ctx) error {
	tags, err := h.tagService.List(c.UserContext())
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, tags, "Tags retrieved successfully")
}
