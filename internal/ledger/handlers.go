package ledger

import (
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
)

type createRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/posts", func(c *fiber.Ctx) error {
		var req createRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		if req.Content == "" || utf8.RuneCountInString(req.Content) > MaxContentLength {
			return fiber.NewError(fiber.StatusBadRequest, "content must be 1-280 characters")
		}

		post, ok := svc.AddPost(c.Context(), req.Content, req.ImageURL)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "no active session")
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	})

	r.Get("/posts", func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.Context()))
	})
}
