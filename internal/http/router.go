package http

import (
	"net/http"

	"recovery-backend/internal/handlers"
	"recovery-backend/internal/middleware"
	"recovery-backend/internal/models"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	caseHandler *handlers.CaseHandler,
	followupHandler *handlers.FollowupHandler,
	callLogHandler *handlers.CallLogHandler,
	offerHandler *handlers.OfferHandler,
	paymentHandler *handlers.PaymentHandler,
	expenseHandler *handlers.ExpenseHandler,
	referralHandler *handlers.ReferralHandler,
	fieldDataHandler *handlers.FieldDataHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	uploadsDir string,
) *mux.Router {
	r := mux.NewRouter()

	// Uploaded case documents, served read-only
	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))).Methods("GET")

	// Public API routes - Authentication
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Razorpay calls the webhook directly; signature check replaces auth
	r.HandleFunc("/api/payments/online/webhook", paymentHandler.RazorpayWebhook).Methods("POST")

	admin := authMiddleware.RequireRole(models.RoleAdmin)
	agentOrAdmin := authMiddleware.RequireRole(models.RoleAgent, models.RoleAdmin)

	// Protected API routes - Users
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("", userHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("/{id}", userHandler.GetUser).Methods("GET")
	usersAPI.HandleFunc("/{id}", admin(http.HandlerFunc(userHandler.UpdateUser)).ServeHTTP).Methods("PUT")
	usersAPI.HandleFunc("/{id}", admin(http.HandlerFunc(userHandler.DeleteUser)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Cases
	casesAPI := r.PathPrefix("/api/cases").Subrouter()
	casesAPI.Use(authMiddleware.Authenticate)
	casesAPI.HandleFunc("", caseHandler.ListCases).Methods("GET")
	casesAPI.HandleFunc("", caseHandler.CreateCase).Methods("POST")
	casesAPI.HandleFunc("/{id}", caseHandler.GetCase).Methods("GET")
	casesAPI.HandleFunc("/{id}", caseHandler.UpdateCase).Methods("PUT")
	casesAPI.HandleFunc("/{id}", admin(http.HandlerFunc(caseHandler.DeleteCase)).ServeHTTP).Methods("DELETE")
	casesAPI.HandleFunc("/{id}/assign", admin(http.HandlerFunc(caseHandler.AssignCase)).ServeHTTP).Methods("POST")
	casesAPI.HandleFunc("/{id}/complete", agentOrAdmin(http.HandlerFunc(caseHandler.CompleteCase)).ServeHTTP).Methods("POST")
	casesAPI.HandleFunc("/{id}/documents", caseHandler.UploadDocuments).Methods("POST")
	casesAPI.HandleFunc("/{id}/notes", caseHandler.ListNotes).Methods("GET")
	casesAPI.HandleFunc("/{id}/notes", caseHandler.AddNote).Methods("POST")

	// Protected API routes - Followups (leads)
	followupsAPI := r.PathPrefix("/api/followups").Subrouter()
	followupsAPI.Use(authMiddleware.Authenticate)
	followupsAPI.HandleFunc("", followupHandler.ListFollowups).Methods("GET")
	followupsAPI.HandleFunc("", followupHandler.CreateFollowup).Methods("POST")
	followupsAPI.HandleFunc("/{id}", followupHandler.UpdateFollowup).Methods("PUT")
	followupsAPI.HandleFunc("/{id}", admin(http.HandlerFunc(followupHandler.DeleteFollowup)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Call logs (append-only)
	callLogsAPI := r.PathPrefix("/api/call-logs").Subrouter()
	callLogsAPI.Use(authMiddleware.Authenticate)
	callLogsAPI.HandleFunc("", callLogHandler.ListCallLogs).Methods("GET")
	callLogsAPI.HandleFunc("", callLogHandler.CreateCallLog).Methods("POST")

	// Protected API routes - Offers
	offersAPI := r.PathPrefix("/api/offers").Subrouter()
	offersAPI.Use(authMiddleware.Authenticate)
	offersAPI.HandleFunc("", offerHandler.ListOffers).Methods("GET")
	offersAPI.HandleFunc("", offerHandler.CreateOffer).Methods("POST")
	offersAPI.HandleFunc("/{id}", offerHandler.UpdateOffer).Methods("PUT")
	offersAPI.HandleFunc("/{id}", offerHandler.DeleteOffer).Methods("DELETE")

	// Protected API routes - Payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.ListPayments).Methods("GET")
	paymentsAPI.HandleFunc("", paymentHandler.CreatePayment).Methods("POST")
	paymentsAPI.HandleFunc("/online/order", paymentHandler.CreateOnlineOrder).Methods("POST")
	paymentsAPI.HandleFunc("/online/transactions", paymentHandler.ListOnlineTransactions).Methods("GET")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.GetPayment).Methods("GET")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.UpdatePayment).Methods("PUT")
	paymentsAPI.HandleFunc("/{id}", admin(http.HandlerFunc(paymentHandler.DeletePayment)).ServeHTTP).Methods("DELETE")
	paymentsAPI.HandleFunc("/{id}/receipt", paymentHandler.DownloadReceipt).Methods("GET")

	// Protected API routes - Expenses
	expensesAPI := r.PathPrefix("/api/expenses").Subrouter()
	expensesAPI.Use(authMiddleware.Authenticate)
	expensesAPI.HandleFunc("", expenseHandler.ListExpenses).Methods("GET")
	expensesAPI.HandleFunc("", expenseHandler.CreateExpense).Methods("POST")
	expensesAPI.HandleFunc("/{id}", admin(http.HandlerFunc(expenseHandler.DeleteExpense)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Referrals
	referralsAPI := r.PathPrefix("/api/referrals").Subrouter()
	referralsAPI.Use(authMiddleware.Authenticate)
	referralsAPI.HandleFunc("", referralHandler.ListReferrals).Methods("GET")
	referralsAPI.HandleFunc("", referralHandler.CreateReferral).Methods("POST")
	referralsAPI.HandleFunc("/{id}", admin(http.HandlerFunc(referralHandler.DeleteReferral)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Field data (marketing visits)
	fieldDataAPI := r.PathPrefix("/api/field-data").Subrouter()
	fieldDataAPI.Use(authMiddleware.Authenticate)
	fieldDataAPI.HandleFunc("", fieldDataHandler.ListFieldData).Methods("GET")
	fieldDataAPI.HandleFunc("", fieldDataHandler.CreateFieldData).Methods("POST")
	fieldDataAPI.HandleFunc("/{id}", admin(http.HandlerFunc(fieldDataHandler.DeleteFieldData)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Dashboards
	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("/stats", dashboardHandler.GetStats).Methods("GET")
	dashboardAPI.HandleFunc("/activities", dashboardHandler.GetActivities).Methods("GET")
	dashboardAPI.HandleFunc("/metrics", dashboardHandler.GetMetrics).Methods("GET")

	r.HandleFunc("/api/admin/stats", admin(http.HandlerFunc(dashboardHandler.GetAdminStats)).ServeHTTP).Methods("GET")
	r.HandleFunc("/api/agent/stats/{officerId}", agentOrAdmin(http.HandlerFunc(dashboardHandler.GetAgentStats)).ServeHTTP).Methods("GET")
	r.HandleFunc("/api/marketing/stats/{marketingId}", authMiddleware.RequireRole(models.RoleMarketing, models.RoleAdmin)(http.HandlerFunc(dashboardHandler.GetMarketingStats)).ServeHTTP).Methods("GET")

	// Health and metrics
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
