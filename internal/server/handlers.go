package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/storage"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, storage.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicateLocker):
		return http.StatusConflict
	case errors.Is(err, repository.ErrInvalidTransition):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (s *Server) handleCreateLocker(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Number string `json:"number"`
		Size   string `json:"size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := s.storage.CreateLocker(r.Context(), req.Number, req.Size)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleListLockers(w http.ResponseWriter, r *http.Request) {
	lockers, err := s.storage.ListLockers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, lockers)
}

func (s *Server) handleUpdateLockerStatus(w http.ResponseWriter, r *http.Request) {
	lockerID := mux.Vars(r)["id"]

	var req struct {
		Status    string  `json:"status"`
		OrderID   *string `json:"order_id"`
		DoorState *string `json:"door_state"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.storage.UpdateLockerStatus(r.Context(), lockerID, req.Status, req.OrderID, req.DoorState); err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Locker updated"})
}

func (s *Server) handleDedupeLockers(w http.ResponseWriter, r *http.Request) {
	removed, err := s.storage.DedupeLockers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SenderID        string  `json:"sender_id"`
		SenderName      string  `json:"sender_name"`
		SenderPhone     string  `json:"sender_phone"`
		SenderType      string  `json:"sender_type"`
		ReceiverName    string  `json:"receiver_name"`
		ReceiverPhone   string  `json:"receiver_phone"`
		OrderCode       *string `json:"order_code"`
		LockerNumber    string  `json:"locker_number"`
		TransactionType string  `json:"transaction_type"`
		DeliveryInfoID  *string `json:"delivery_info_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := s.storage.CreateOrder(r.Context(), storage.DepositInput{
		SenderID:        req.SenderID,
		SenderName:      req.SenderName,
		SenderPhone:     req.SenderPhone,
		SenderType:      req.SenderType,
		ReceiverName:    req.ReceiverName,
		ReceiverPhone:   req.ReceiverPhone,
		OrderCode:       req.OrderCode,
		LockerNumber:    req.LockerNumber,
		TransactionType: req.TransactionType,
		DeliveryInfoID:  req.DeliveryInfoID,
	})
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.storage.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]

	limit := 0
	if lastStr := r.URL.Query().Get("last"); lastStr != "" {
		var err error
		limit, err = strconv.Atoi(lastStr)
		if err != nil || limit <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid value for 'last' parameter")
			return
		}
	}

	orders, err := s.storage.ListOrdersBySender(r.Context(), userID, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleHardwarePickup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID      string `json:"order_id"`
		LockerNumber string `json:"locker_number"`
		Message      string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.storage.HandlePickup(r.Context(), req.OrderID, req.LockerNumber)
	if err != nil {
		s.logger.Error("hardware pickup failed",
			zap.String("order_id", req.OrderID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to process pickup")
		return
	}

	// The kiosk keys off the status code: only a 200 opens the door. The
	// body carries the human-readable reason either way.
	if !result.Success {
		respondJSON(w, http.StatusBadRequest, result)
		return
	}

	// The pickup itself is committed; the admin feed entry is best effort.
	n := storage.NewPickupNotification(req.OrderID, req.LockerNumber, req.Message)
	if err := s.storage.SaveNotification(r.Context(), n); err != nil {
		s.logger.Error("pickup committed but notification dropped",
			zap.String("order_id", req.OrderID), zap.Error(err))
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleRecordDeliveryInfo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DeliveryType string  `json:"delivery_type"`
		LockerID     *string `json:"locker_id"`
		SenderID     *string `json:"sender_id"`
		Fingerprint  *string `json:"fingerprint"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := s.storage.RecordDeliveryInfo(r.Context(), storage.DeliveryInfoInput{
		DeliveryType: req.DeliveryType,
		LockerID:     req.LockerID,
		SenderID:     req.SenderID,
		Fingerprint:  req.Fingerprint,
	})
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleUpdateDeliveryInfo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Fingerprint         *string `json:"fingerprint"`
		FingerprintVerified *string `json:"fingerprint_verified"`
		Received            *string `json:"received"`
		OrderID             *string `json:"order_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := s.storage.UpdateDeliveryInfo(r.Context(), mux.Vars(r)["id"], storage.DeliveryInfoPatch{
		Fingerprint:         req.Fingerprint,
		FingerprintVerified: req.FingerprintVerified,
		Received:            req.Received,
		OrderID:             req.OrderID,
	})
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Delivery info updated"})
}

func (s *Server) handleDeleteDeliveryInfo(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.DeleteDeliveryInfo(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Delivery info deleted"})
}

func (s *Server) handleListDeliveryInfos(w http.ResponseWriter, r *http.Request) {
	infos, err := s.storage.ListDeliveryInfos(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, infos)
}

func (s *Server) handleCleanupDeliveryInfos(w http.ResponseWriter, r *http.Request) {
	cleaned := s.sweeper.Sweep(r.Context())
	respondJSON(w, http.StatusOK, map[string]int{"cleaned": cleaned})
}

func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID   string  `json:"customer_id"`
		CustomerName string  `json:"customer_name"`
		LockerID     *string `json:"locker_id"`
		Description  string  `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := s.storage.CreateErrorReport(r.Context(), storage.CreateErrorReportInput{
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		LockerID:     req.LockerID,
		Description:  req.Description,
	})
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	var (
		reports []*repository.ErrorReport
		err     error
	)
	if lockerID := r.URL.Query().Get("locker_id"); lockerID != "" {
		reports, err = s.storage.ListErrorReportsByLocker(r.Context(), lockerID)
	} else if customerID := r.URL.Query().Get("customer_id"); customerID != "" {
		reports, err = s.storage.ListErrorReportsByCustomer(r.Context(), customerID)
	} else {
		reports, err = s.storage.ListErrorReports(r.Context())
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.storage.GetErrorReport(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// handleReportActions exposes the legal next transitions so the admin UI
// renders its buttons from the same rule the handlers enforce.
func (s *Server) handleReportActions(w http.ResponseWriter, r *http.Request) {
	report, err := s.storage.GetErrorReport(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	actions := storage.NextActions(report.Status, report.Stage)
	if actions == nil {
		actions = []storage.ReportAction{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"actions": actions})
}

type reportNoteRequest struct {
	Note string `json:"note"`
}

func (s *Server) reportTransition(w http.ResponseWriter, r *http.Request, apply func(id, note string) error) {
	var req reportNoteRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	if err := apply(mux.Vars(r)["id"], req.Note); err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Report updated"})
}

func (s *Server) handleReceiveReport(w http.ResponseWriter, r *http.Request) {
	s.reportTransition(w, r, func(id, note string) error {
		return s.storage.ReceiveErrorReport(r.Context(), id, note)
	})
}

func (s *Server) handleProcessReport(w http.ResponseWriter, r *http.Request) {
	s.reportTransition(w, r, func(id, note string) error {
		return s.storage.StartProcessingError(r.Context(), id, note)
	})
}

func (s *Server) handleResolveReport(w http.ResponseWriter, r *http.Request) {
	s.reportTransition(w, r, func(id, note string) error {
		return s.storage.ResolveErrorReport(r.Context(), id, note)
	})
}

func (s *Server) handleNotifyReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID string `json:"customer_id"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	if err := s.storage.NotifyCustomerAboutErrorResolution(r.Context(), mux.Vars(r)["id"], req.CustomerID); err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Customer notified"})
}

func (s *Server) handleCloseReport(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.CloseErrorReport(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Report closed"})
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := s.storage.ListAdminNotifications(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, notifications)
}

func (s *Server) handleListCustomerNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := s.storage.ListCustomerNotifications(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, notifications)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.MarkNotificationAsRead(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

func (s *Server) handleMarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.MarkAllAdminNotificationsAsRead(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "All notifications marked as read"})
}

func (s *Server) handleMigrateNotifications(w http.ResponseWriter, r *http.Request) {
	migrated, err := s.storage.MigrateLegacyNotifications(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"migrated": migrated})
}

func (s *Server) handleSendSMS(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Phone == "" || req.Message == "" {
		respondError(w, http.StatusBadRequest, "Missing phone or message")
		return
	}

	if err := s.sms.Send(r.Context(), req.Phone, req.Message); err != nil {
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "SMS dispatched"})
}

func (s *Server) handleSendPush(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DeviceToken string `json:"device_token"`
		Message     string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.DeviceToken == "" || req.Message == "" {
		respondError(w, http.StatusBadRequest, "Missing device_token or message")
		return
	}

	if err := s.push.Send(r.Context(), req.DeviceToken, req.Message); err != nil {
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Push dispatched"})
}

func (s *Server) handleSweepInactive(w http.ResponseWriter, r *http.Request) {
	locked, err := s.storage.SweepInactiveAccounts(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"locked": locked})
}

func (s *Server) handleUpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.storage.UpdateUserStatus(r.Context(), mux.Vars(r)["id"], req.Active); err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "User status updated"})
}
