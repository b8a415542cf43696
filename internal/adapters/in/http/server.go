package http

import (
	"bytes"
	"maps"
	"net/http"
	"slices"

	"garment/internal/core/application/usecases/commands"
	"garment/internal/core/application/usecases/queries"
	"garment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Server implements the /api/v1 routes on top of the application use cases.
type Server struct {
	h      Handlers
	logger *zap.Logger
}

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{h: handlers, logger: logger}
}

// CreateBundle handles POST /api/v1/bundles.
func (s *Server) CreateBundle(c echo.Context) error {
	var req NewBundleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateBundleCommand(req.CuttingID, req.Qty, req.StartingNo, req.EndingNo, actorOf(c))
	if err != nil {
		return s.fail(c, err)
	}

	b, err := s.h.CreateBundle.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toBundleResponse(b))
}

// UpdateBundle handles PUT /api/v1/bundles/:id.
func (s *Server) UpdateBundle(c echo.Context) error {
	id, err := bundleID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req BundleShapeRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewUpdateBundleCommand(id, req.Qty, req.StartingNo, req.EndingNo, actorOf(c))
	if err != nil {
		return s.fail(c, err)
	}

	b, err := s.h.UpdateBundle.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toBundleResponse(b))
}

// DeleteBundle handles DELETE /api/v1/bundles/:id.
func (s *Server) DeleteBundle(c echo.Context) error {
	id, err := bundleID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	cmd, err := commands.NewDeleteBundleCommand(id, actorOf(c))
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteBundle.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"id": id})
}

// NextStartingNumber handles GET /api/v1/bundles/next-number.
func (s *Server) NextStartingNumber(c echo.Context) error {
	var styleID, colourCode string
	if err := runtime.BindQueryParameter("form", true, true, "styleId", c.QueryParams(), &styleID); err != nil {
		return badRequest(c, err.Error())
	}
	if err := runtime.BindQueryParameter("form", true, true, "colourCode", c.QueryParams(), &colourCode); err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewNextStartingNumberQuery(styleID, colourCode)
	if err != nil {
		return s.fail(c, err)
	}

	next, err := s.h.NextStartingNumber.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"nextStartingNumber": next})
}

// GetBundleStats handles GET /api/v1/orders/:orderId/bundles/stats.
func (s *Server) GetBundleStats(c echo.Context) error {
	stats, err := s.bundleStats(c)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toBundleStatsResponse(stats))
}

// ExportBundleStats handles GET /api/v1/orders/:orderId/bundles/stats/export.
func (s *Server) ExportBundleStats(c echo.Context) error {
	stats, err := s.bundleStats(c)
	if err != nil {
		return s.fail(c, err)
	}

	var buf bytes.Buffer
	if err = s.h.StatsExporter.Write(&buf, stats); err != nil {
		return s.fail(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+s.h.StatsExporter.FileName(stats.OrderID)+`"`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (s *Server) bundleStats(c echo.Context) (*queries.BundleStatsBySizeResponse, error) {
	orderID, err := pathString(c, "orderId")
	if err != nil {
		return nil, err
	}
	query, err := queries.NewBundleStatsBySizeQuery(orderID)
	if err != nil {
		return nil, err
	}
	return s.h.BundleStats.Handle(c.Request().Context(), query)
}

// ListAvailableBundles handles GET /api/v1/orders/:orderId/bundles/available.
func (s *Server) ListAvailableBundles(c echo.Context) error {
	orderID, err := pathString(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	query, err := queries.NewListAvailableBundlesQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	bundles, err := s.h.AvailableBundles.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]AvailableBundleResponse, len(bundles))
	for i, b := range bundles {
		response[i] = AvailableBundleResponse(b)
	}
	return c.JSON(http.StatusOK, response)
}

// VerifyEmployee handles GET /api/v1/employees/:empId/verify.
func (s *Server) VerifyEmployee(c echo.Context) error {
	empID, err := pathString(c, "empId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	query, err := queries.NewVerifyEmployeeQuery(empID)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.VerifyEmployee.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, EmployeeResponse(*view))
}

// CreateLoadingTransaction handles POST /api/v1/loading/transactions.
func (s *Server) CreateLoadingTransaction(c echo.Context) error {
	var req NewLoadingTransactionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	items := make([]kernel.SizeQty, 0, len(req.Quantities))
	for _, size := range slices.Sorted(maps.Keys(req.Quantities)) {
		items = append(items, kernel.SizeQty{Size: size, Qty: req.Quantities[size]})
	}
	quantities, err := kernel.NewSizeQuantities(items...)
	if err != nil {
		return s.fail(c, err)
	}

	selections := make([]commands.BundleSelection, 0, len(req.Bundles))
	for _, b := range req.Bundles {
		selections = append(selections, commands.BundleSelection{BundleID: b.BundleID, MinusQty: b.MinusQty, Reason: b.Reason})
	}

	cmd, err := commands.NewCreateLoadingTransactionCommand(
		req.EmployeeID, req.LineNo, req.OrderID, quantities, selections, actorOf(c))
	if err != nil {
		return s.fail(c, err)
	}

	tx, err := s.h.CreateLoading.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toLoadingResponse(tx))
}

// ApproveLoadingTransaction handles POST /api/v1/loading/transactions/:id/approve.
func (s *Server) ApproveLoadingTransaction(c echo.Context) error {
	id, err := loadingID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req ApprovalRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewApproveLoadingTransactionCommand(id, req.CategoryName, req.ApproverID, actorOf(c))
	if err != nil {
		return s.fail(c, err)
	}

	tx, err := s.h.ApproveLoading.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toLoadingResponse(tx))
}

// RejectLoadingTransaction handles POST /api/v1/loading/transactions/:id/reject.
func (s *Server) RejectLoadingTransaction(c echo.Context) error {
	id, err := loadingID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req RejectionRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewRejectLoadingTransactionCommand(id, req.CategoryName, actorOf(c))
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.RejectLoading.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id.String(), "status": "REJECTED"})
}

// HandoverLoadingTransaction handles POST /api/v1/loading/transactions/:id/handover.
func (s *Server) HandoverLoadingTransaction(c echo.Context) error {
	id, err := loadingID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req HandoverRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewHandoverLoadingTransactionCommand(
		id, req.CategoryName, req.HandoverID, req.VariantStyleID, actorOf(c))
	if err != nil {
		return s.fail(c, err)
	}

	tx, err := s.h.HandoverLoading.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toLoadingResponse(tx))
}

// GetRecommendation handles GET /api/v1/loading/recommendation/:lineNo.
func (s *Server) GetRecommendation(c echo.Context) error {
	var lineNo int
	err := runtime.BindStyledParameterWithOptions("simple", "lineNo", c.Param("lineNo"), &lineNo,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath})
	if err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewGetRecommendationQuery(lineNo)
	if err != nil {
		return s.fail(c, err)
	}

	rec, err := s.h.Recommendation.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toRecommendationResponse(rec))
}

// GetLoadingDashboard handles GET /api/v1/loading/dashboard.
func (s *Server) GetLoadingDashboard(c echo.Context) error {
	dashboard, err := s.h.Dashboard.Handle(c.Request().Context(), queries.NewGetLoadingDashboardQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, DashboardResponse{
		Completed:       toSummaries(dashboard.Completed),
		PendingApproval: toSummaries(dashboard.PendingApproval),
		PendingHandover: toSummaries(dashboard.PendingHandover),
	})
}

func bundleID(c echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath})
	return id, err
}

func loadingID(c echo.Context) (kernel.UUID, error) {
	raw, err := pathString(c, "id")
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromString(raw)
}

func pathString(c echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath})
	return value, err
}
