package http

import (
	"net/http"

	"doctor-appointment-system/internal/delivery/http/handler"
	"doctor-appointment-system/internal/delivery/http/middleware"
	"doctor-appointment-system/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	uploadDir           string
	authHandler         *handler.AuthHandler
	dashboardHandler    *handler.DashboardHandler
	directoryHandler    *handler.DoctorDirectoryHandler
	adminProfileHandler *handler.AdminProfileHandler
	doctorHandler       *handler.DoctorHandler
	patientHandler      *handler.PatientHandler
	receptionistHandler *handler.ReceptionistHandler
	specialtyHandler    *handler.SpecialtyHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	uploadDir string,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	directoryHandler *handler.DoctorDirectoryHandler,
	adminProfileHandler *handler.AdminProfileHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	receptionistHandler *handler.ReceptionistHandler,
	specialtyHandler *handler.SpecialtyHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		uploadDir:           uploadDir,
		authHandler:         authHandler,
		dashboardHandler:    dashboardHandler,
		directoryHandler:    directoryHandler,
		adminProfileHandler: adminProfileHandler,
		doctorHandler:       doctorHandler,
		patientHandler:      patientHandler,
		receptionistHandler: receptionistHandler,
		specialtyHandler:    specialtyHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Uploaded profile images are served as static files
	r.router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(r.uploadDir))))

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Settings (any authenticated user)
	settings := api.PathPrefix("/settings").Subrouter()
	settings.Use(r.authMiddleware.Authenticate)
	settings.HandleFunc("/change-password", r.authHandler.ChangePasswordForm).Methods(http.MethodGet)
	settings.HandleFunc("/change-password", r.authHandler.ChangePassword).Methods(http.MethodPost)

	// Role dashboards
	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(r.authMiddleware.Authenticate)
	dashboard.Handle("/admin", middleware.RequireAdmin(http.HandlerFunc(r.dashboardHandler.Admin))).Methods(http.MethodGet)
	dashboard.Handle("/doctor", middleware.RequireDoctor(http.HandlerFunc(r.dashboardHandler.Doctor))).Methods(http.MethodGet)
	dashboard.Handle("/patient", middleware.RequirePatient(http.HandlerFunc(r.dashboardHandler.Patient))).Methods(http.MethodGet)
	dashboard.Handle("/receptionist", middleware.RequireReceptionist(http.HandlerFunc(r.dashboardHandler.Receptionist))).Methods(http.MethodGet)

	// Doctor directory (patients and receptionists)
	directory := api.PathPrefix("/doctors").Subrouter()
	directory.Use(r.authMiddleware.Authenticate)
	directory.Use(middleware.RequireRole(entity.RoleIDPatient, entity.RoleIDReceptionist))
	directory.HandleFunc("", r.directoryHandler.Directory).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Admin's own profile
	admin.HandleFunc("/profile", r.adminProfileHandler.Profile).Methods(http.MethodGet)
	admin.HandleFunc("/profile", r.adminProfileHandler.UpdateProfile).Methods(http.MethodPut)

	// Doctor management
	admin.HandleFunc("/doctors", r.doctorHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/search", r.doctorHandler.Search).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}/activate", r.doctorHandler.Activate).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}/deactivate", r.doctorHandler.Deactivate).Methods(http.MethodPost)

	// Patient management
	admin.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/patients/search", r.patientHandler.Search).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/patients/{id}/activate", r.patientHandler.Activate).Methods(http.MethodPost)
	admin.HandleFunc("/patients/{id}/deactivate", r.patientHandler.Deactivate).Methods(http.MethodPost)

	// Receptionist management
	admin.HandleFunc("/receptionists", r.receptionistHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/receptionists", r.receptionistHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/receptionists/search", r.receptionistHandler.Search).Methods(http.MethodGet)
	admin.HandleFunc("/receptionists/{id}", r.receptionistHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/receptionists/{id}", r.receptionistHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/receptionists/{id}/activate", r.receptionistHandler.Activate).Methods(http.MethodPost)
	admin.HandleFunc("/receptionists/{id}/deactivate", r.receptionistHandler.Deactivate).Methods(http.MethodPost)

	// Specialty management
	admin.HandleFunc("/specialties", r.specialtyHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/specialties", r.specialtyHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/specialties/search", r.specialtyHandler.Search).Methods(http.MethodGet)
	admin.HandleFunc("/specialties/{id}", r.specialtyHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/specialties/{id}", r.specialtyHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/specialties/{id}/activate", r.specialtyHandler.Activate).Methods(http.MethodPost)
	admin.HandleFunc("/specialties/{id}/deactivate", r.specialtyHandler.Deactivate).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
