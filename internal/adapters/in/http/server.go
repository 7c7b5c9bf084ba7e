// Package http exposes the order workflow over a REST API. Each route binds a
// request body, builds the corresponding command or query, and maps domain
// errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"replenish/internal/core/application/usecases/commands"
	"replenish/internal/core/application/usecases/queries"
	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/core/domain/model/order"
	"replenish/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler          commands.CreateOrderCommandHandler
	approveOrderHandler         commands.ApproveOrderCommandHandler
	confirmOrderHandler         commands.ConfirmOrderCommandHandler
	raiseIssueHandler           commands.RaiseIssueCommandHandler
	replyIssueHandler           commands.ReplyIssueCommandHandler
	startArrangingHandler       commands.StartArrangingCommandHandler
	markArrangedHandler         commands.MarkArrangedCommandHandler
	sendForPackagingHandler     commands.SendForPackagingCommandHandler
	startPackagingHandler       commands.StartPackagingCommandHandler
	dispatchOrderHandler        commands.DispatchOrderCommandHandler
	confirmReceivedHandler      commands.ConfirmReceivedCommandHandler
	reportDeliveryIssuesHandler commands.ReportDeliveryIssuesCommandHandler

	getOrderHandler          queries.GetOrderQueryHandler
	getUnclosedOrdersHandler queries.GetUnclosedOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	raiseIssueHandler commands.RaiseIssueCommandHandler,
	replyIssueHandler commands.ReplyIssueCommandHandler,
	startArrangingHandler commands.StartArrangingCommandHandler,
	markArrangedHandler commands.MarkArrangedCommandHandler,
	sendForPackagingHandler commands.SendForPackagingCommandHandler,
	startPackagingHandler commands.StartPackagingCommandHandler,
	dispatchOrderHandler commands.DispatchOrderCommandHandler,
	confirmReceivedHandler commands.ConfirmReceivedCommandHandler,
	reportDeliveryIssuesHandler commands.ReportDeliveryIssuesCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUnclosedOrdersHandler queries.GetUnclosedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		approveOrderHandler:         approveOrderHandler,
		confirmOrderHandler:         confirmOrderHandler,
		raiseIssueHandler:           raiseIssueHandler,
		replyIssueHandler:           replyIssueHandler,
		startArrangingHandler:       startArrangingHandler,
		markArrangedHandler:         markArrangedHandler,
		sendForPackagingHandler:     sendForPackagingHandler,
		startPackagingHandler:       startPackagingHandler,
		dispatchOrderHandler:        dispatchOrderHandler,
		confirmReceivedHandler:      confirmReceivedHandler,
		reportDeliveryIssuesHandler: reportDeliveryIssuesHandler,
		getOrderHandler:             getOrderHandler,
		getUnclosedOrdersHandler:    getUnclosedOrdersHandler,
	}
}

// RegisterRoutes binds the workflow routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetUnclosedOrders)
	api.GET("/orders/:orderID", s.GetOrder)

	api.POST("/orders/:orderID/approve", s.ApproveOrder)
	api.POST("/orders/:orderID/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderID/issues", s.RaiseIssue)
	api.POST("/orders/:orderID/issues/reply", s.ReplyIssue)
	api.POST("/orders/:orderID/start-arranging", s.StartArranging)
	api.POST("/orders/:orderID/mark-arranged", s.MarkArranged)
	api.POST("/orders/:orderID/send-for-packaging", s.SendForPackaging)
	api.POST("/orders/:orderID/start-packaging", s.StartPackaging)
	api.POST("/orders/:orderID/dispatch", s.DispatchOrder)
	api.POST("/orders/:orderID/confirm-received", s.ConfirmReceived)
	api.POST("/orders/:orderID/delivery-issues", s.ReportDeliveryIssues)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// writeDomainError maps the error taxonomy onto HTTP status codes.
func writeDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, errs.ErrItemNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidState):
		return writeError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrNotAuthorized):
		return writeError(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrInvalidQuantity),
		errors.Is(err, errs.ErrEvidenceRequired),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		return writeError(ctx, http.StatusInternalServerError, "internal error")
	}
}

func parseOrderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderID"))
}

// ItemLineRequest is one requested item line in an order creation request.
type ItemLineRequest struct {
	SKU       string  `json:"sku"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	RequesterID string            `json:"requester_id"`
	BranchID    string            `json:"branch_id"`
	Items       []ItemLineRequest `json:"items"`
}

// CreateOrderResponse returns the identifier assigned to the new order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	requesterID, err := kernel.UUIDFromString(req.RequesterID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid requester_id")
	}
	branchID, err := kernel.UUIDFromString(req.BranchID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid branch_id")
	}

	lines := make([]commands.ItemLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, commands.ItemLine{
			SKU:       item.SKU,
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, requesterID, branchID, lines)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// ItemApprovalRequest is one approved quantity keyed by SKU.
type ItemApprovalRequest struct {
	SKU         string `json:"sku"`
	QtyApproved int    `json:"qty_approved"`
}

// ApproveOrderRequest is the body of POST /orders/:orderID/approve.
type ApproveOrderRequest struct {
	ManagerID string                `json:"manager_id"`
	Approvals []ItemApprovalRequest `json:"approvals"`
}

// ApproveOrder handles POST /api/v1/orders/:orderID/approve.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid order ID")
	}

	var req ApproveOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	managerID, err := kernel.UUIDFromString(req.ManagerID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid manager_id")
	}

	approvals := make([]order.ItemApproval, 0, len(req.Approvals))
	for _, a := range req.Approvals {
		approvals = append(approvals, order.ItemApproval{SKU: a.SKU, QtyApproved: a.QtyApproved})
	}

	cmd, err := commands.NewApproveOrderCommand(orderID, managerID, approvals)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ConfirmOrderRequest is the body of POST /orders/:orderID/confirm.
type ConfirmOrderRequest struct {
	RequesterID string `json:"requester_id"`
}

// ConfirmOrder handles POST /api/v1/orders/:orderID/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid order ID")
	}

	var req ConfirmOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	requesterID, err := kernel.UUIDFromString(req.RequesterID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid requester_id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, requesterID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ItemIssueRequest is one pre-fulfillment concern scoped to an item.
type ItemIssueRequest struct {
	SKU    string `json:"sku"`
	Reason string `json:"reason"`
}

// RaiseIssueRequest is the body of POST /orders/:orderID/issues.
type RaiseIssueRequest struct {
	RequesterID string             `json:"requester_id"`
	Issues      []ItemIssueRequest `json:"issues"`
}

// RaiseIssue handles POST /api/v1/orders/:orderID/issues.
func (s *Server) RaiseIssue(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid order ID")
	}

	var req RaiseIssueRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	requesterID, err := kernel.UUIDFromString(req.RequesterID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid requester_id")
	}

	issues := make([]order.ItemIssue, 0, len(req.Issues))
	for _, issue := range req.Issues {
		issues = append(issues, order.ItemIssue{SKU: issue.SKU, Reason: issue.Reason})
	}

	cmd, err := commands.NewRaiseIssueCommand(orderID, requesterID, issues)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.raiseIssueHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ReplyIssueRequest is the body of POST /orders/:orderID/issues/reply.
// Adjustments are optional revised quantities accompanying the reply.
type ReplyIssueRequest struct {
	ManagerID   string                `json:"manager_id"`
	Reply       string                `json:"reply"`
	Adjustments []ItemApprovalRequest `json:"adjustments,omitempty"`
}

// ReplyIssue handles POST /api/v1/orders/:orderID/issues/reply.
func (s *Server) ReplyIssue(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid order ID")
	}

	var req ReplyIssueRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	managerID, err := kernel.UUIDFromString(req.ManagerID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid manager_id")
	}

	adjustments := make([]order.ItemApproval, 0, len(req.Adjustments))
	for _, a := range req.Adjustments {
		adjustments = append(adjustments, order.ItemApproval{SKU: a.SKU, QtyApproved: a.QtyApproved})
	}

	cmd, err := commands.NewReplyIssueCommand(orderID, managerID, req.Reply, adjustments)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.replyIssueHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// StageRequest is the body shared by the fulfillment stage routes. Evidence is
// required for the stages that demand it and ignored by the ones that do not.
type StageRequest struct {
	ManagerID string   `json:"manager_id"`
	Evidence  []string `json:"evidence,omitempty"`
}

func (s *Server) bindStageRequest(ctx echo.Context) (kernel.UUID, kernel.UUID, []string, error) {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, nil, writeError(ctx, http.StatusBadRequest, "invalid order ID")
	}

	var req StageRequest
	if err := ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, nil, writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	managerID, err := kernel.UUIDFromString(req.ManagerID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, nil, writeError(ctx, http.StatusBadRequest, "invalid manager_id")
	}

	return orderID, managerID, req.Evidence, nil
}

// StartArranging handles POST /api/v1/orders/:orderID/start-arranging.
func (s *Server) StartArranging(ctx echo.Context) error {
	orderID, managerID, _, bindErr := s.bindStageRequest(ctx)
	if bindErr != nil {
		return bindErr
	}

	cmd, err := commands.NewStartArrangingCommand(orderID, managerID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.startArrangingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkArranged handles POST /api/v1/orders/:orderID/mark-arranged.
func (s *Server) MarkArranged(ctx echo.Context) error {
	orderID, managerID, evidence, bindErr := s.bindStageRequest(ctx)
	if bindErr != nil {
		return bindErr
	}

	cmd, err := commands.NewMarkArrangedCommand(orderID, managerID, evidence)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.markArrangedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SendForPackaging handles POST /api/v1/orders/:orderID/send-for-packaging.
func (s *Server) SendForPackaging(ctx echo.Context) error {
	orderID, managerID, evidence, bindErr := s.bindStageRequest(ctx)
	if bindErr != nil {
		return bindErr
	}

	cmd, err := commands.NewSendForPackagingCommand(orderID, managerID, evidence)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.sendForPackagingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// StartPackaging handles POST /api/v1/orders/:orderID/start-packaging.
func (s *Server) StartPackaging(ctx echo.Context) error {
	orderID, managerID, _, bindErr := s.bindStageRequest(ctx)
	if bindErr != nil {
		return bindErr
	}

	cmd, err := commands.NewStartPackagingCommand(orderID, managerID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.startPackagingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DispatchOrderRequest is the body of POST /orders/:orderID/dispatch.
type DispatchOrderRequest struct {
	ManagerID    string   `json:"manager_id"`
	Courier      string   `json:"courier"`
	TrackingLink string   `json:"tracking_link"`
	Evidence     []string `json:"evidence"`
}

// DispatchOrder handles POST /api/v1/orders/:orderID/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid order ID")
	}

	var req DispatchOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	managerID, err := kernel.UUIDFromString(req.ManagerID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid manager_id")
	}

	tracking, err := order.NewTracking(req.Courier, req.TrackingLink)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID, managerID, tracking, req.Evidence)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ConfirmReceivedRequest is the body of POST /orders/:orderID/confirm-received.
type ConfirmReceivedRequest struct {
	RequesterID string `json:"requester_id"`
}

// ConfirmReceived handles POST /api/v1/orders/:orderID/confirm-received.
func (s *Server) ConfirmReceived(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid order ID")
	}

	var req ConfirmReceivedRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	requesterID, err := kernel.UUIDFromString(req.RequesterID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid requester_id")
	}

	cmd, err := commands.NewConfirmReceivedCommand(orderID, requesterID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.confirmReceivedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeliveryIssueRequest is one post-delivery quality report line.
type DeliveryIssueRequest struct {
	SKU      string   `json:"sku"`
	Reason   string   `json:"reason"`
	Evidence []string `json:"evidence,omitempty"`
}

// ReportDeliveryIssuesRequest is the body of POST /orders/:orderID/delivery-issues.
type ReportDeliveryIssuesRequest struct {
	RequesterID string                 `json:"requester_id"`
	Issues      []DeliveryIssueRequest `json:"issues"`
}

// ReportDeliveryIssues handles POST /api/v1/orders/:orderID/delivery-issues.
func (s *Server) ReportDeliveryIssues(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid order ID")
	}

	var req ReportDeliveryIssuesRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	requesterID, err := kernel.UUIDFromString(req.RequesterID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid requester_id")
	}

	issues := make([]commands.DeliveryIssueLine, 0, len(req.Issues))
	for _, issue := range req.Issues {
		issues = append(issues, commands.DeliveryIssueLine{
			SKU:      issue.SKU,
			Reason:   issue.Reason,
			Evidence: issue.Evidence,
		})
	}

	cmd, err := commands.NewReportDeliveryIssuesCommand(orderID, requesterID, issues)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.reportDeliveryIssuesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// OrderSummaryResponse is one row of the open orders listing.
type OrderSummaryResponse struct {
	ID         string  `json:"id"`
	Number     string  `json:"number"`
	Status     string  `json:"status"`
	BranchID   string  `json:"branch_id"`
	TotalItems int     `json:"total_items"`
	TotalValue float64 `json:"total_value"`
	CreatedAt  string  `json:"created_at"`
}

// GetUnclosedOrders handles GET /api/v1/orders.
func (s *Server) GetUnclosedOrders(ctx echo.Context) error {
	query := queries.NewGetUnclosedOrdersQuery()

	rows, err := s.getUnclosedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(rows))
	for i, row := range rows {
		response[i] = OrderSummaryResponse{
			ID:         row.ID.String(),
			Number:     row.Number,
			Status:     row.Status,
			BranchID:   row.BranchID.String(),
			TotalItems: row.TotalItems,
			TotalValue: row.TotalValue,
			CreatedAt:  row.CreatedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OrderItemResponse is one item line of the detail view.
type OrderItemResponse struct {
	SKU          string  `json:"sku"`
	QtyRequested int     `json:"qty_requested"`
	QtyApproved  *int    `json:"qty_approved,omitempty"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
}

// OrderDetailResponse is the full order detail view.
type OrderDetailResponse struct {
	ID           string              `json:"id"`
	Number       string              `json:"number"`
	Status       string              `json:"status"`
	RequesterID  string              `json:"requester_id"`
	BranchID     string              `json:"branch_id"`
	ManagerID    string              `json:"manager_id,omitempty"`
	Items        []OrderItemResponse `json:"items"`
	Remarks      string              `json:"remarks,omitempty"`
	ManagerReply string              `json:"manager_reply,omitempty"`
	TotalItems   int                 `json:"total_items"`
	TotalValue   float64             `json:"total_value"`
	Courier      string              `json:"courier,omitempty"`
	TrackingLink string              `json:"tracking_link,omitempty"`
	CreatedAt    string              `json:"created_at"`
	ReceivedAt   string              `json:"received_at,omitempty"`
	AutoCloseAt  string              `json:"auto_close_at,omitempty"`
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	items := make([]OrderItemResponse, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = OrderItemResponse{
			SKU:          item.SKU,
			QtyRequested: item.QtyRequested,
			QtyApproved:  item.QtyApproved,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.TotalPrice,
		}
	}

	response := OrderDetailResponse{
		ID:           detail.ID.String(),
		Number:       detail.Number,
		Status:       detail.Status,
		RequesterID:  detail.RequesterID.String(),
		BranchID:     detail.BranchID.String(),
		Items:        items,
		Remarks:      detail.Remarks,
		ManagerReply: detail.ManagerReply,
		TotalItems:   detail.TotalItems,
		TotalValue:   detail.TotalValue,
		Courier:      detail.Courier,
		TrackingLink: detail.TrackingLink,
		CreatedAt:    detail.CreatedAt.Format(time.RFC3339),
	}
	if detail.ManagerID != nil {
		response.ManagerID = detail.ManagerID.String()
	}
	if detail.ReceivedAt != nil {
		response.ReceivedAt = detail.ReceivedAt.Format(time.RFC3339)
	}
	if detail.AutoCloseAt != nil {
		response.AutoCloseAt = detail.AutoCloseAt.Format(time.RFC3339)
	}

	return ctx.JSON(http.StatusOK, response)
}
