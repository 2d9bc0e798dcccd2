package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"guestwall/internal/adapters/auth"
	"guestwall/internal/delivery/http/middleware"
	"guestwall/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Admin routes are wrapped by the admin gate before anything else runs;
// wall submissions resolve the optional guest session into a caller identity.
func NewRouter(
	authController *AuthController,
	wallController *WallController,
	adminController *AdminController,
	authSvc domain.AuthService,
	secrets auth.SecretComparer,
	adminSecret string,
) *http.ServeMux {
	mux := http.NewServeMux()

	withSession := middleware.ResolveSession(authSvc)
	admin := middleware.RequireAdmin(secrets, adminSecret)

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("GET /auth/session", authController.Session)
	mux.HandleFunc("POST /auth/logout", authController.Logout)
	mux.HandleFunc("POST /admin/login", authController.AdminLogin)

	// Guest wall
	mux.HandleFunc("POST /wall/posts", withSession(wallController.SubmitPost))
	mux.HandleFunc("POST /wall/photos", withSession(wallController.SubmitPhoto))
	mux.HandleFunc("GET /wall/feed", wallController.Feed)
	mux.HandleFunc("GET /wall/pinned", wallController.Pinned)

	// Admin
	mux.HandleFunc("GET /admin/content", admin(adminController.ListContent))
	mux.HandleFunc("POST /admin/content/{contentID}/moderate", admin(adminController.Moderate))
	mux.HandleFunc("POST /admin/content/moderate-batch", admin(adminController.ModerateBatch))
	mux.HandleFunc("GET /admin/stats", admin(adminController.Stats))
	mux.HandleFunc("POST /admin/pinned", admin(adminController.Pin))
	mux.HandleFunc("DELETE /admin/pinned/{contentID}", admin(adminController.Unpin))
	mux.HandleFunc("GET /admin/guests", admin(adminController.ListGuests))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
