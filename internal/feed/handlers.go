package feed

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/feed", func(c *fiber.Ctx) error {
		return c.JSON(svc.List())
	})

	r.Post("/feed/:id/like", func(c *fiber.Ctx) error {
		post, ok := svc.ToggleLike(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "post not found")
		}
		return c.JSON(post)
	})
}
