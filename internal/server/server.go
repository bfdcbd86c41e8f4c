//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/notify"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/storage"
)

type Storage interface {
	CreateLocker(ctx context.Context, number, size string) (string, error)
	ListLockers(ctx context.Context) ([]*repository.Locker, error)
	UpdateLockerStatus(ctx context.Context, lockerID, status string, orderID, doorState *string) error
	DedupeLockers(ctx context.Context) (int, error)

	CreateOrder(ctx context.Context, in storage.DepositInput) (*repository.Order, error)
	GetOrder(ctx context.Context, id string) (*repository.Order, error)
	ListOrdersBySender(ctx context.Context, senderID string, limit int) ([]*repository.Order, error)
	HandlePickup(ctx context.Context, orderID, lockerNumber string) (storage.PickupResult, error)

	RecordDeliveryInfo(ctx context.Context, in storage.DeliveryInfoInput) (string, error)
	UpdateDeliveryInfo(ctx context.Context, id string, patch storage.DeliveryInfoPatch) error
	DeleteDeliveryInfo(ctx context.Context, id string) error
	ListDeliveryInfos(ctx context.Context) ([]*repository.DeliveryInfo, error)

	CreateErrorReport(ctx context.Context, in storage.CreateErrorReportInput) (string, error)
	GetErrorReport(ctx context.Context, id string) (*repository.ErrorReport, error)
	ListErrorReports(ctx context.Context) ([]*repository.ErrorReport, error)
	ListErrorReportsByLocker(ctx context.Context, lockerID string) ([]*repository.ErrorReport, error)
	ListErrorReportsByCustomer(ctx context.Context, customerID string) ([]*repository.ErrorReport, error)
	ReceiveErrorReport(ctx context.Context, reportID, note string) error
	StartProcessingError(ctx context.Context, reportID, note string) error
	ResolveErrorReport(ctx context.Context, reportID, note string) error
	NotifyCustomerAboutErrorResolution(ctx context.Context, reportID, customerID string) error
	CloseErrorReport(ctx context.Context, reportID string) error

	SaveNotification(ctx context.Context, n *repository.Notification) error
	ListAdminNotifications(ctx context.Context) ([]*repository.Notification, error)
	ListCustomerNotifications(ctx context.Context, customerID string) ([]*repository.Notification, error)
	MarkNotificationAsRead(ctx context.Context, id string) error
	MarkAllAdminNotificationsAsRead(ctx context.Context) error
	MigrateLegacyNotifications(ctx context.Context) (int, error)

	SweepInactiveAccounts(ctx context.Context) (int, error)
	UpdateUserStatus(ctx context.Context, id string, active bool) error
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

// Auditor accepts one audit entry per admin request; the storage layer
// forwards them to the outbox.
type Auditor interface {
	EnqueueAudit(ctx context.Context, payload repository.AuditLogPayload) error
}

// Sweeper triggers one staging-cleanup pass on demand.
type Sweeper interface {
	Sweep(ctx context.Context) int
}

type Server struct {
	storage       Storage
	userRepo      UserRepo
	auditor       Auditor
	sweeper       Sweeper
	sms           notify.Sender
	push          notify.Sender
	logger        *zap.Logger
	hardwareToken string
	server        *http.Server
}

func New(storage Storage, userRepo UserRepo, auditor Auditor, sweeper Sweeper, sms, push notify.Sender, logger *zap.Logger) *Server {
	return &Server{
		storage:       storage,
		userRepo:      userRepo,
		auditor:       auditor,
		sweeper:       sweeper,
		sms:           sms,
		push:          push,
		logger:        logger,
		hardwareToken: os.Getenv("HARDWARE_TOKEN"),
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Kiosk firmware calls these with a shared token instead of basic auth.
	hw := r.PathPrefix("/hardware").Subrouter()
	hw.Use(s.hardwareAuthMiddleware)
	hw.HandleFunc("/pickup", s.handleHardwarePickup).Methods(http.MethodPost)
	hw.HandleFunc("/delivery-infos", s.handleRecordDeliveryInfo).Methods(http.MethodPost)
	hw.HandleFunc("/delivery-infos/{id}", s.handleUpdateDeliveryInfo).Methods(http.MethodPut)

	admin := r.PathPrefix("/").Subrouter()
	admin.Use(s.auditLogMiddleware, s.basicAuthMiddleware)

	admin.HandleFunc("/lockers", s.handleCreateLocker).Methods(http.MethodPost)
	admin.HandleFunc("/lockers", s.handleListLockers).Methods(http.MethodGet)
	admin.HandleFunc("/lockers/dedupe", s.handleDedupeLockers).Methods(http.MethodPost)
	admin.HandleFunc("/lockers/{id}/status", s.handleUpdateLockerStatus).Methods(http.MethodPut)

	admin.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost)
	admin.HandleFunc("/orders/{id}", s.handleGetOrder).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userID}/orders", s.handleListOrders).Methods(http.MethodGet)

	admin.HandleFunc("/delivery-infos", s.handleListDeliveryInfos).Methods(http.MethodGet)
	admin.HandleFunc("/delivery-infos/cleanup", s.handleCleanupDeliveryInfos).Methods(http.MethodPost)
	admin.HandleFunc("/delivery-infos/{id}", s.handleDeleteDeliveryInfo).Methods(http.MethodDelete)

	admin.HandleFunc("/reports", s.handleCreateReport).Methods(http.MethodPost)
	admin.HandleFunc("/reports", s.handleListReports).Methods(http.MethodGet)
	admin.HandleFunc("/reports/{id}", s.handleGetReport).Methods(http.MethodGet)
	admin.HandleFunc("/reports/{id}/actions", s.handleReportActions).Methods(http.MethodGet)
	admin.HandleFunc("/reports/{id}/receive", s.handleReceiveReport).Methods(http.MethodPost)
	admin.HandleFunc("/reports/{id}/process", s.handleProcessReport).Methods(http.MethodPost)
	admin.HandleFunc("/reports/{id}/resolve", s.handleResolveReport).Methods(http.MethodPost)
	admin.HandleFunc("/reports/{id}/notify", s.handleNotifyReport).Methods(http.MethodPost)
	admin.HandleFunc("/reports/{id}/close", s.handleCloseReport).Methods(http.MethodPost)

	admin.HandleFunc("/notifications", s.handleListNotifications).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/read-all", s.handleMarkAllNotificationsRead).Methods(http.MethodPut)
	admin.HandleFunc("/notifications/migrate", s.handleMigrateNotifications).Methods(http.MethodPost)
	admin.HandleFunc("/notifications/{id}/read", s.handleMarkNotificationRead).Methods(http.MethodPut)
	admin.HandleFunc("/customers/{id}/notifications", s.handleListCustomerNotifications).Methods(http.MethodGet)

	admin.HandleFunc("/notify/sms", s.handleSendSMS).Methods(http.MethodPost)
	admin.HandleFunc("/notify/push", s.handleSendPush).Methods(http.MethodPost)

	admin.HandleFunc("/users/sweep-inactive", s.handleSweepInactive).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}/status", s.handleUpdateUserStatus).Methods(http.MethodPut)

	return r
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// hardwareAuthMiddleware checks the shared kiosk token. With no token
// configured the hardware endpoints stay open, which matches how the kiosks
// are deployed on an isolated network segment.
func (s *Server) hardwareAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.hardwareToken != "" {
			got := strings.TrimSpace(r.Header.Get("X-Hardware-Token"))
			if subtle.ConstantTimeCompare([]byte(got), []byte(s.hardwareToken)) != 1 {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
