package http

import (
	"net/http"

	"clinic-admin-api/internal/delivery/http/handler"
	"clinic-admin-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	authHandler             *handler.AuthHandler
	clinicHandler           *handler.ClinicHandler
	doctorHandler           *handler.DoctorHandler
	patientHandler          *handler.PatientHandler
	appointmentHandler      *handler.AppointmentHandler
	feedbackHandler         *handler.FeedbackHandler
	feeChangeRequestHandler *handler.FeeChangeRequestHandler
	auditLogHandler         *handler.AuditLogHandler
	authMiddleware          *middleware.AuthMiddleware
	corsMiddleware          *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	clinicHandler *handler.ClinicHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	feedbackHandler *handler.FeedbackHandler,
	feeChangeRequestHandler *handler.FeeChangeRequestHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		authHandler:             authHandler,
		clinicHandler:           clinicHandler,
		doctorHandler:           doctorHandler,
		patientHandler:          patientHandler,
		appointmentHandler:      appointmentHandler,
		feedbackHandler:         feedbackHandler,
		feeChangeRequestHandler: feeChangeRequestHandler,
		auditLogHandler:         auditLogHandler,
		authMiddleware:          authMiddleware,
		corsMiddleware:          corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Public feedback submission
	api.HandleFunc("/feedback", r.feedbackHandler.Create).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Dashboard routes (protected - any operator)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireStaff)

	// Clinic management
	admin.HandleFunc("/clinics", r.clinicHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/clinics", r.clinicHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/clinics/{id}", r.clinicHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/clinics/{id}", r.clinicHandler.Update).Methods(http.MethodPut)

	// Doctor management
	admin.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.doctorHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/import/template", r.doctorHandler.DownloadTemplate).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/import", r.doctorHandler.Import).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}/status", r.doctorHandler.UpdateStatus).Methods(http.MethodPatch)

	// Patient management
	admin.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/patients", r.patientHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/patients/{id}/status", r.patientHandler.UpdateStatus).Methods(http.MethodPatch)

	// Appointment referrals
	admin.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/appointments", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)

	// Feedback review
	admin.HandleFunc("/feedback", r.feedbackHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/feedback/{id}", r.feedbackHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/feedback/{id}/status", r.feedbackHandler.UpdateStatus).Methods(http.MethodPatch)

	// Professional fee change requests
	admin.HandleFunc("/fee-requests", r.feeChangeRequestHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/fee-requests", r.feeChangeRequestHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/fee-requests/{id}", r.feeChangeRequestHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/fee-requests/{id}/approve", r.feeChangeRequestHandler.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/fee-requests/{id}/reject", r.feeChangeRequestHandler.Reject).Methods(http.MethodPost)

	// Admin-only routes: account management, hard deletes, audit trail
	adminOnly := api.PathPrefix("/admin").Subrouter()
	adminOnly.Use(r.authMiddleware.Authenticate)
	adminOnly.Use(middleware.RequireAdmin)

	adminOnly.HandleFunc("/users", r.authHandler.CreateUser).Methods(http.MethodPost)
	adminOnly.HandleFunc("/users", r.authHandler.GetAllUsers).Methods(http.MethodGet)
	adminOnly.HandleFunc("/clinics/{id}", r.clinicHandler.Delete).Methods(http.MethodDelete)
	adminOnly.HandleFunc("/doctors/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)
	adminOnly.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)
	adminOnly.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	adminOnly.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
