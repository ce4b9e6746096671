package session

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/login", func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		if !svc.Login(c.Context(), req.Email, req.Password) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
		}
		user, _ := svc.Current()
		return c.JSON(fiber.Map{"user": user})
	})

	r.Post("/signup", func(c *fiber.Ctx) error {
		var req SignupInput
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		svc.Signup(c.Context(), req)
		user, _ := svc.Current()
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
	})

	r.Post("/logout", func(c *fiber.Ctx) error {
		svc.Logout(c.Context())
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Get("/session", func(c *fiber.Ctx) error {
		user, ok := svc.Current()
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "no active session")
		}
		return c.JSON(fiber.Map{"user": user})
	})

	r.Put("/profile", func(c *fiber.Ctx) error {
		if _, ok := svc.Current(); !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "no active session")
		}
		var upd ProfileUpdate
		if err := c.BodyParser(&upd); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		svc.UpdateProfile(c.Context(), upd)
		user, _ := svc.Current()
		return c.JSON(fiber.Map{"user": user})
	})
}
