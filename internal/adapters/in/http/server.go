// Package http is the inbound HTTP adapter. Handlers decode requests, build
// commands/queries via their validating constructors and translate domain
// errors into status codes. No business logic lives here.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stationlog"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler      commands.CreateOrderCommandHandler
	assignOrderHandler      commands.AssignOrderCommandHandler
	startOrderHandler       commands.StartOrderCommandHandler
	skipOrderHandler        commands.SkipOrderCommandHandler
	markMissingPartsHandler commands.MarkMissingPartsCommandHandler
	markShippedHandler      commands.MarkShippedCommandHandler
	deleteOrdersHandler     commands.DeleteOrdersCommandHandler
	recordScanHandler       commands.RecordScanCommandHandler
	undoLastTechScanHandler commands.UndoLastTechScanCommandHandler
	deleteTechScansHandler  commands.DeleteTechScansCommandHandler
	syncExceptionsHandler   commands.SyncExceptionsCommandHandler

	verifyOrderHandler     queries.VerifyOrderByTrackingQueryHandler
	techScanStateHandler   queries.GetTechScanStateQueryHandler
	unshippedOrdersHandler queries.GetUnshippedOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	startOrderHandler commands.StartOrderCommandHandler,
	skipOrderHandler commands.SkipOrderCommandHandler,
	markMissingPartsHandler commands.MarkMissingPartsCommandHandler,
	markShippedHandler commands.MarkShippedCommandHandler,
	deleteOrdersHandler commands.DeleteOrdersCommandHandler,
	recordScanHandler commands.RecordScanCommandHandler,
	undoLastTechScanHandler commands.UndoLastTechScanCommandHandler,
	deleteTechScansHandler commands.DeleteTechScansCommandHandler,
	syncExceptionsHandler commands.SyncExceptionsCommandHandler,
	verifyOrderHandler queries.VerifyOrderByTrackingQueryHandler,
	techScanStateHandler queries.GetTechScanStateQueryHandler,
	unshippedOrdersHandler queries.GetUnshippedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		assignOrderHandler:      assignOrderHandler,
		startOrderHandler:       startOrderHandler,
		skipOrderHandler:        skipOrderHandler,
		markMissingPartsHandler: markMissingPartsHandler,
		markShippedHandler:      markShippedHandler,
		deleteOrdersHandler:     deleteOrdersHandler,
		recordScanHandler:       recordScanHandler,
		undoLastTechScanHandler: undoLastTechScanHandler,
		deleteTechScansHandler:  deleteTechScansHandler,
		syncExceptionsHandler:   syncExceptionsHandler,
		verifyOrderHandler:      verifyOrderHandler,
		techScanStateHandler:    techScanStateHandler,
		unshippedOrdersHandler:  unshippedOrdersHandler,
	}
}

// RegisterRoutes attaches all routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.POST("/orders/assign", s.AssignOrder)
	v1.POST("/orders/start", s.StartOrder)
	v1.POST("/orders/skip", s.SkipOrder)
	v1.POST("/orders/missing-parts", s.MarkMissingParts)
	v1.POST("/orders/shipped", s.MarkShipped)
	v1.POST("/orders/delete", s.DeleteOrders)
	v1.GET("/orders/verify", s.VerifyOrder)
	v1.GET("/orders/unshipped", s.GetUnshippedOrders)
	v1.POST("/scans", s.RecordScan)
	v1.GET("/tech/scan-state", s.GetTechScanState)
	v1.POST("/tech/undo-last", s.UndoLastTechScan)
	v1.POST("/tech/delete-tracking", s.DeleteTechScans)
	v1.POST("/exceptions/sync", s.SyncExceptions)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Debug   string `json:"debug,omitempty"`
}

// respondError maps a domain error onto an HTTP status. Input problems carry
// their detail; storage and unexpected failures get a generic message so raw
// store errors never leak to clients.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request",
			Debug:   err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: "not found",
		})
	case errors.Is(err, errs.ErrConcurrentUpdateConflict):
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:    http.StatusConflict,
			Message: "conflict",
		})
	case errors.Is(err, errs.ErrStoreUnavailable):
		return ctx.JSON(http.StatusServiceUnavailable, errorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "storage temporarily unavailable",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type createOrderRequest struct {
	ExternalOrderID string `json:"externalOrderId"`
	ProductTitle    string `json:"productTitle"`
	Condition       string `json:"condition"`
	SKU             string `json:"sku"`
	Quantity        int    `json:"quantity"`
	AccountSource   string `json:"accountSource"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.ExternalOrderID, req.ProductTitle, req.Condition, req.SKU,
		req.Quantity, req.AccountSource,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// optionalField distinguishes "absent" from "present but null" in a JSON
// body. Absent leaves the order field alone; explicit null clears it.
type optionalField[T any] struct {
	Set   bool
	Value *T
}

func (o *optionalField[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

type assignOrderRequest struct {
	OrderIDs         []int64               `json:"orderIds"`
	TesterID         optionalField[int64]  `json:"testerId"`
	PackerID         optionalField[int64]  `json:"packerId"`
	ShipByDate       optionalField[string] `json:"shipByDate"`
	OutOfStockReason optionalField[string] `json:"outOfStockReason"`
}

// AssignOrder handles POST /api/v1/orders/assign. The patch is applied to
// every listed order. Only fields present in the body are touched; a null
// value clears the field.
func (s *Server) AssignOrder(ctx echo.Context) error {
	var req assignOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	patch := ports.AssignmentPatch{}
	if req.TesterID.Set {
		patch.SetTester = true
		if req.TesterID.Value != nil {
			id, err := kernel.NewStaffID(*req.TesterID.Value)
			if err != nil {
				return respondError(ctx, err)
			}
			patch.TesterID = &id
		}
	}
	if req.PackerID.Set {
		patch.SetPacker = true
		if req.PackerID.Value != nil {
			id, err := kernel.NewStaffID(*req.PackerID.Value)
			if err != nil {
				return respondError(ctx, err)
			}
			patch.PackerID = &id
		}
	}
	if req.ShipByDate.Set {
		patch.SetShipBy = true
		if req.ShipByDate.Value != nil {
			date, err := time.Parse(time.RFC3339, *req.ShipByDate.Value)
			if err != nil {
				return badRequest(ctx, "shipByDate must be RFC 3339")
			}
			patch.ShipByDate = &date
		}
	}
	if req.OutOfStockReason.Set {
		patch.SetOutOfStock = true
		patch.OutOfStockReason = req.OutOfStockReason.Value
	}

	cmd, err := commands.NewAssignOrderCommand(req.OrderIDs, patch)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type orderStaffRequest struct {
	OrderID  int64 `json:"orderId"`
	TesterID int64 `json:"testerId"`
}

// StartOrder handles POST /api/v1/orders/start. First tester to claim wins;
// a lost race comes back as 409.
func (s *Server) StartOrder(ctx echo.Context) error {
	var req orderStaffRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	testerID, err := kernel.NewStaffID(req.TesterID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartOrderCommand(req.OrderID, testerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.startOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SkipOrder handles POST /api/v1/orders/skip.
func (s *Server) SkipOrder(ctx echo.Context) error {
	var req orderStaffRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	testerID, err := kernel.NewStaffID(req.TesterID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSkipOrderCommand(req.OrderID, testerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.skipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type missingPartsRequest struct {
	OrderID int64  `json:"orderId"`
	Reason  string `json:"reason"`
}

// MarkMissingParts handles POST /api/v1/orders/missing-parts.
func (s *Server) MarkMissingParts(ctx echo.Context) error {
	var req missingPartsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewMarkMissingPartsCommand(req.OrderID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.markMissingPartsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type markShippedRequest struct {
	OrderID int64 `json:"orderId"`
}

// MarkShipped handles POST /api/v1/orders/shipped. Repeating the call on an
// already shipped order is a no-op.
func (s *Server) MarkShipped(ctx echo.Context) error {
	var req markShippedRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewMarkShippedCommand(req.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.markShippedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type deleteOrdersRequest struct {
	OrderIDs []int64 `json:"orderIds"`
}

type deleteOutcomeResponse struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

// DeleteOrders handles POST /api/v1/orders/delete. Missing ids are reported
// per id instead of failing the batch.
func (s *Server) DeleteOrders(ctx echo.Context) error {
	var req deleteOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewDeleteOrdersCommand(req.OrderIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	outcomes, err := s.deleteOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]deleteOutcomeResponse, len(outcomes))
	for i, outcome := range outcomes {
		response[i] = deleteOutcomeResponse{ID: outcome.ID, Deleted: outcome.Deleted}
	}

	return ctx.JSON(http.StatusOK, response)
}

type verifyOrderResponse struct {
	Found           bool   `json:"found"`
	OrderID         int64  `json:"orderId,omitempty"`
	ExternalOrderID string `json:"externalOrderId,omitempty"`
	ProductTitle    string `json:"productTitle,omitempty"`
	Condition       string `json:"condition,omitempty"`
	Tracking        string `json:"tracking,omitempty"`
	Packed          bool   `json:"packed"`
	Shipped         bool   `json:"shipped"`
}

// VerifyOrder handles GET /api/v1/orders/verify?tracking=. An unknown label
// is found:false, not an error.
func (s *Server) VerifyOrder(ctx echo.Context) error {
	query, err := queries.NewVerifyOrderByTrackingQuery(ctx.QueryParam("tracking"))
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.verifyOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, verifyOrderResponse{
		Found:           result.Found,
		OrderID:         result.OrderID,
		ExternalOrderID: result.ExternalOrderID,
		ProductTitle:    result.ProductTitle,
		Condition:       result.Condition,
		Tracking:        result.Tracking,
		Packed:          result.Packed,
		Shipped:         result.Shipped,
	})
}

type unshippedOrderResponse struct {
	ID               int64      `json:"id"`
	ExternalOrderID  string     `json:"externalOrderId"`
	ProductTitle     string     `json:"productTitle"`
	Condition        string     `json:"condition"`
	SKU              string     `json:"sku"`
	Tracking         string     `json:"tracking"`
	Status           string     `json:"status"`
	TesterID         *int64     `json:"testerId"`
	PackerID         *int64     `json:"packerId"`
	ShipByDate       *time.Time `json:"shipByDate"`
	OutOfStockReason string     `json:"outOfStockReason,omitempty"`
	SkippedBy        []int64    `json:"skippedBy"`
	Quantity         int        `json:"quantity"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// GetUnshippedOrders handles GET /api/v1/orders/unshipped.
func (s *Server) GetUnshippedOrders(ctx echo.Context) error {
	query := queries.NewGetUnshippedOrdersQuery()

	rows, err := s.unshippedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]unshippedOrderResponse, len(rows))
	for i, row := range rows {
		skippedBy := make([]int64, len(row.SkippedBy))
		for j, staffID := range row.SkippedBy {
			skippedBy[j] = staffID.Int64()
		}

		response[i] = unshippedOrderResponse{
			ID:               row.ID,
			ExternalOrderID:  row.ExternalOrderID,
			ProductTitle:     row.ProductTitle,
			Condition:        row.Condition,
			SKU:              row.SKU,
			Tracking:         row.Tracking,
			Status:           row.Status.String(),
			TesterID:         staffIDValue(row.TesterID),
			PackerID:         staffIDValue(row.PackerID),
			ShipByDate:       row.ShipByDate,
			OutOfStockReason: row.OutOfStockReason,
			SkippedBy:        skippedBy,
			Quantity:         row.Quantity,
			CreatedAt:        row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type recordScanRequest struct {
	Kind         string `json:"kind"`
	Tracking     string `json:"tracking"`
	SerialNumber string `json:"serialNumber"`
	SerialType   string `json:"serialType"`
	OperatorID   int64  `json:"operatorId"`
}

// RecordScan handles POST /api/v1/scans.
func (s *Server) RecordScan(ctx echo.Context) error {
	var req recordScanRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	operatorID, err := kernel.NewStaffID(req.OperatorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRecordScanCommand(
		stationlog.Kind(req.Kind), req.Tracking,
		req.SerialNumber, req.SerialType, operatorID,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.recordScanHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

type techScanStateResponse struct {
	Found           bool       `json:"found"`
	OrderID         int64      `json:"orderId,omitempty"`
	ExternalOrderID string     `json:"externalOrderId,omitempty"`
	ProductTitle    string     `json:"productTitle,omitempty"`
	SKU             string     `json:"sku,omitempty"`
	Condition       string     `json:"condition,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Tracking        string     `json:"tracking,omitempty"`
	AccountSource   string     `json:"accountSource,omitempty"`
	Quantity        int        `json:"quantity,omitempty"`
	SerialNumbers   []string   `json:"serialNumbers"`
	FirstTestedAt   *time.Time `json:"firstTestedAt,omitempty"`
	FirstTestedBy   *int64     `json:"firstTestedBy,omitempty"`
}

// GetTechScanState handles GET /api/v1/tech/scan-state?tracking=.
func (s *Server) GetTechScanState(ctx echo.Context) error {
	query, err := queries.NewGetTechScanStateQuery(ctx.QueryParam("tracking"))
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.techScanStateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, techScanStateResponse{
		Found:           result.Found,
		OrderID:         result.OrderID,
		ExternalOrderID: result.ExternalOrderID,
		ProductTitle:    result.ProductTitle,
		SKU:             result.SKU,
		Condition:       result.Condition,
		Notes:           result.Notes,
		Tracking:        result.Tracking,
		AccountSource:   result.AccountSource,
		Quantity:        result.Quantity,
		SerialNumbers:   result.SerialNumbers,
		FirstTestedAt:   result.FirstTestedAt,
		FirstTestedBy:   staffIDValue(result.FirstTestedBy),
	})
}

type undoLastTechScanRequest struct {
	Tracking   string `json:"tracking"`
	OperatorID *int64 `json:"operatorId"`
}

type undoLastTechScanResponse struct {
	RemovedSerial    string   `json:"removedSerial"`
	RemainingSerials []string `json:"remainingSerials"`
}

// UndoLastTechScan handles POST /api/v1/tech/undo-last.
func (s *Server) UndoLastTechScan(ctx echo.Context) error {
	var req undoLastTechScanRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var operatorID *kernel.StaffID
	if req.OperatorID != nil {
		id, err := kernel.NewStaffID(*req.OperatorID)
		if err != nil {
			return respondError(ctx, err)
		}
		operatorID = &id
	}

	cmd, err := commands.NewUndoLastTechScanCommand(req.Tracking, operatorID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.undoLastTechScanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, undoLastTechScanResponse{
		RemovedSerial:    result.RemovedSerial,
		RemainingSerials: result.RemainingSerials,
	})
}

type deleteTechScansRequest struct {
	Tracking string `json:"tracking"`
}

type deleteTechScansResponse struct {
	Deleted int64 `json:"deleted"`
}

// DeleteTechScans handles POST /api/v1/tech/delete-tracking.
func (s *Server) DeleteTechScans(ctx echo.Context) error {
	var req deleteTechScansRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewDeleteTechScansCommand(req.Tracking)
	if err != nil {
		return respondError(ctx, err)
	}

	deleted, err := s.deleteTechScansHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deleteTechScansResponse{Deleted: deleted})
}

type syncExceptionsResponse struct {
	Processed int `json:"processed"`
	Merged    int `json:"merged"`
	Skipped   int `json:"skipped"`
}

// SyncExceptions handles POST /api/v1/exceptions/sync. Also runs on a
// schedule; this endpoint triggers it on demand.
func (s *Server) SyncExceptions(ctx echo.Context) error {
	cmd, err := commands.NewSyncExceptionsCommand()
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.syncExceptionsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, syncExceptionsResponse{
		Processed: result.Processed,
		Merged:    result.Merged,
		Skipped:   result.Skipped,
	})
}

func staffIDValue(id *kernel.StaffID) *int64 {
	if id == nil {
		return nil
	}
	value := id.Int64()
	return &value
}
