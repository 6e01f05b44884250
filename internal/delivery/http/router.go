package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"seminarmanager/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth wraps the handlers that need an authenticated user.
func NewRouter(
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	registrationController *controllers.RegistrationController,
	programController *controllers.ProgramController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Public catalog
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("GET /events/{eventID}/speakers", eventController.ListSpeakers)
	mux.HandleFunc("GET /events/{eventID}/eligibility", registrationController.Eligibility)
	mux.HandleFunc("GET /events/{eventID}/price", registrationController.Quote)

	// Editor actions
	mux.HandleFunc("POST /topics", requireAuth(eventController.CreateTopic))
	mux.HandleFunc("POST /topics/{topicID}/dates", requireAuth(eventController.CreateEventDate))
	mux.HandleFunc("POST /events", requireAuth(eventController.CreateSingleEvent))
	mux.HandleFunc("DELETE /events/{eventID}", requireAuth(eventController.DeleteEvent))
	mux.HandleFunc("POST /events/{eventID}/hide", requireAuth(eventController.HideEvent))
	mux.HandleFunc("POST /events/{eventID}/unhide", requireAuth(eventController.UnhideEvent))
	mux.HandleFunc("POST /events/{eventID}/confirm", requireAuth(eventController.ConfirmEvent))
	mux.HandleFunc("POST /events/{eventID}/cancel", requireAuth(eventController.CancelEvent))
	mux.HandleFunc("POST /events/{eventID}/duplicate", requireAuth(eventController.DuplicateEvent))
	mux.HandleFunc("POST /events/{eventID}/time-slots", requireAuth(eventController.AddTimeSlot))
	mux.HandleFunc("POST /speakers", requireAuth(eventController.AddSpeaker))
	mux.HandleFunc("POST /events/{eventID}/speakers/{speakerID}", requireAuth(eventController.AssignSpeaker))
	mux.HandleFunc("GET /events/{eventID}/cancellation-deadline", requireAuth(eventController.GetCancellationDeadline))
	mux.HandleFunc("POST /import/program", requireAuth(programController.ImportProgram))

	// Registrations
	mux.HandleFunc("POST /events/{eventID}/registrations", requireAuth(registrationController.Register))
	mux.HandleFunc("DELETE /registrations/{registrationID}", requireAuth(registrationController.Unregister))
	mux.HandleFunc("POST /registrations/{registrationID}/payment", requireAuth(registrationController.ConfirmPayment))
	mux.HandleFunc("GET /me/registrations", requireAuth(registrationController.ListMyRegistrations))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
