package routes

import (
	"net/http"

	"github.com/stayhaven/hotel-booking/backend/internal/api/handlers"
	"github.com/stayhaven/hotel-booking/backend/internal/api/middleware"
	"github.com/stayhaven/hotel-booking/backend/internal/infrastructure/observability"
)

// Middleware is a composable request-pipeline stage: it either passes
// the request on or short-circuits with an error response.
type Middleware func(http.Handler) http.Handler

// Router holds all route handlers and guards
type Router struct {
	mux *http.ServeMux

	tokenHandler   *handlers.TokenHandler
	userHandler    *handlers.UserHandler
	roomHandler    *handlers.RoomHandler
	bookingHandler *handlers.BookingHandler

	auth         Middleware
	requireOwner Middleware
	requireAdmin Middleware

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	tokenHandler *handlers.TokenHandler,
	userHandler *handlers.UserHandler,
	roomHandler *handlers.RoomHandler,
	bookingHandler *handlers.BookingHandler,
	auth Middleware,
	requireOwner Middleware,
	requireAdmin Middleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:            http.NewServeMux(),
		tokenHandler:   tokenHandler,
		userHandler:    userHandler,
		roomHandler:    roomHandler,
		bookingHandler: bookingHandler,
		auth:           auth,
		requireOwner:   requireOwner,
		requireAdmin:   requireAdmin,
		metrics:        metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Liveness endpoint
	r.mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Hotel is running...")); err != nil {
			return
		}
	})

	// Token issuance
	r.mux.HandleFunc("POST /jwt", r.tokenHandler.IssueToken)

	// User endpoints
	r.mux.HandleFunc("POST /users", r.userHandler.CreateUser)
	r.handle("GET /users", r.userHandler.ListUsers, r.auth, r.requireAdmin)
	r.handle("PATCH /users/admin/{id}", r.userHandler.PromoteToAdmin, r.auth, r.requireAdmin)
	r.handle("GET /users/admin/{email}", r.userHandler.CheckAdmin, r.auth)
	r.handle("GET /users/owner/{email}", r.userHandler.CheckOwner, r.auth)

	// Room endpoints
	r.mux.HandleFunc("GET /hotel-list/{place}", r.roomHandler.ListByDistrict)
	r.mux.HandleFunc("GET /hotel-book/{id}", r.roomHandler.GetRoom)
	r.handle("GET /all-rooms", r.roomHandler.ListAll, r.auth, r.requireOwner)
	r.handle("DELETE /all-rooms/{id}", r.roomHandler.DeleteRoom, r.auth, r.requireOwner)
	r.handle("GET /manage-rooms", r.roomHandler.ListAll, r.auth, r.requireAdmin)
	r.handle("DELETE /manage-rooms/{id}", r.roomHandler.DeleteRoom, r.auth, r.requireAdmin)
	r.handle("POST /add-room", r.roomHandler.CreateRoom, r.auth, r.requireOwner)
	r.handle("GET /update-room-get/{id}", r.roomHandler.GetRoom, r.auth)
	r.handle("PATCH /update-room-patch/{id}", r.roomHandler.PatchRoom, r.auth)

	// Booking endpoints
	r.handle("POST /booking-collection", r.bookingHandler.CreateBooking, r.auth)
	r.mux.HandleFunc("GET /all-bookings", r.bookingHandler.ListBookings)
	r.mux.HandleFunc("GET /own-bookings-get/{email}", r.bookingHandler.ListBookingsByEmail)
	r.mux.HandleFunc("PATCH /own-bookings-patch/{id}", r.bookingHandler.CancelBooking)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS is outermost so guard rejections also carry CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}

// handle registers a handler behind a guard chain. Guards run in the
// order given.
func (r *Router) handle(pattern string, fn http.HandlerFunc, guards ...Middleware) {
	var handler http.Handler = fn
	for i := len(guards) - 1; i >= 0; i-- {
		handler = guards[i](handler)
	}
	r.mux.Handle(pattern, handler)
}
