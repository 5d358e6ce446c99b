// Package http exposes the delivery backend over a JSON REST API using echo.
// Handlers translate requests into commands and queries and map use-case
// errors onto HTTP statuses.
package http

import (
	"net/http"
	"strconv"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/assignment"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPackageHandler   commands.CreatePackageCommandHandler
	transitionHandler      commands.TransitionPackageStatusCommandHandler
	assignPackagesHandler  commands.AssignPackagesCommandHandler
	assignByAreaHandler    commands.AssignByAreaCommandHandler
	runRulesHandler        commands.RunAssignmentRulesCommandHandler
	startRouteHandler      commands.StartRouteCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	failDeliveryHandler    commands.FailDeliveryCommandHandler
	createDriverHandler    commands.CreateDriverCommandHandler
	deleteDriverHandler    commands.DeleteDriverCommandHandler
	createRuleHandler      commands.CreateRuleCommandHandler

	// Query handlers
	historyHandler       queries.PackageHistoryQueryHandler
	productivityHandler  queries.ProductivityReportQueryHandler
	inventoryHandler     queries.InventoryByStatusQueryHandler
	assignmentLogHandler queries.AssignmentLogQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createPackageHandler commands.CreatePackageCommandHandler,
	transitionHandler commands.TransitionPackageStatusCommandHandler,
	assignPackagesHandler commands.AssignPackagesCommandHandler,
	assignByAreaHandler commands.AssignByAreaCommandHandler,
	runRulesHandler commands.RunAssignmentRulesCommandHandler,
	startRouteHandler commands.StartRouteCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	failDeliveryHandler commands.FailDeliveryCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	deleteDriverHandler commands.DeleteDriverCommandHandler,
	createRuleHandler commands.CreateRuleCommandHandler,
	historyHandler queries.PackageHistoryQueryHandler,
	productivityHandler queries.ProductivityReportQueryHandler,
	inventoryHandler queries.InventoryByStatusQueryHandler,
	assignmentLogHandler queries.AssignmentLogQueryHandler,
) *Server {
	return &Server{
		createPackageHandler:   createPackageHandler,
		transitionHandler:      transitionHandler,
		assignPackagesHandler:  assignPackagesHandler,
		assignByAreaHandler:    assignByAreaHandler,
		runRulesHandler:        runRulesHandler,
		startRouteHandler:      startRouteHandler,
		confirmDeliveryHandler: confirmDeliveryHandler,
		failDeliveryHandler:    failDeliveryHandler,
		createDriverHandler:    createDriverHandler,
		deleteDriverHandler:    deleteDriverHandler,
		createRuleHandler:      createRuleHandler,
		historyHandler:         historyHandler,
		productivityHandler:    productivityHandler,
		inventoryHandler:       inventoryHandler,
		assignmentLogHandler:   assignmentLogHandler,
	}
}

// RegisterRoutes mounts every endpoint on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/packages", s.CreatePackage)
	api.POST("/packages/:id/transition", s.TransitionPackage)
	api.POST("/packages/:id/confirm", s.ConfirmDelivery)
	api.POST("/packages/:id/fail", s.FailDelivery)
	api.GET("/packages/:id/history", s.GetPackageHistory)

	api.POST("/assignments/packages", s.AssignPackages)
	api.POST("/assignments/area", s.AssignByArea)
	api.POST("/assignments/run", s.RunAssignmentRules)
	api.GET("/assignments/batches", s.GetAssignmentLog)

	api.POST("/drivers", s.CreateDriver)
	api.DELETE("/drivers/:id", s.DeleteDriver)
	api.POST("/drivers/:id/start-route", s.StartRoute)

	api.POST("/rules", s.CreateRule)

	api.GET("/reports/productivity", s.GetProductivityReport)
	api.GET("/reports/inventory", s.GetInventory)
}

// CreatePackage handles POST /api/v1/packages.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var req CreatePackageRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	address, err := kernel.NewAddress(
		req.Address.Street, req.Address.City, req.Address.State, req.Address.Zip,
	)
	if err != nil {
		return fail(ctx, err)
	}

	var destination *kernel.GeoPoint
	if req.Destination != nil {
		point, geoErr := kernel.NewGeoPoint(req.Destination.Lat, req.Destination.Lon)
		if geoErr != nil {
			return fail(ctx, geoErr)
		}
		destination = &point
	}

	var warehouseID *kernel.UUID
	if req.WarehouseID != "" {
		id, idErr := kernel.UUIDFromString(req.WarehouseID)
		if idErr != nil {
			return badRequest(ctx, "Invalid warehouse_id")
		}
		warehouseID = &id
	}

	packageID := kernel.NewUUID()
	cmd, err := commands.NewCreatePackageCommand(
		packageID, req.TrackingNumber, req.RecipientName, address,
		req.Priority, destination, warehouseID, parcel.Status(req.Status),
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createPackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: packageID.String()})
}

// TransitionPackage handles POST /api/v1/packages/:id/transition.
func (s *Server) TransitionPackage(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewTransitionPackageStatusCommand(
		packageID, parcel.Status(req.Target), req.Notes,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.transitionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignPackages handles POST /api/v1/assignments/packages.
func (s *Server) AssignPackages(ctx echo.Context) error {
	var req AssignPackagesRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver_id")
	}

	packageIDs := make([]kernel.UUID, 0, len(req.PackageIDs))
	for _, raw := range req.PackageIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid package id: "+raw)
		}
		packageIDs = append(packageIDs, id)
	}

	cmd, err := commands.NewAssignPackagesCommand(driverID, packageIDs)
	if err != nil {
		return fail(ctx, err)
	}

	assigned, err := s.assignPackagesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignedResponse{Assigned: assigned})
}

// AssignByArea handles POST /api/v1/assignments/area.
func (s *Server) AssignByArea(ctx echo.Context) error {
	var req AssignByAreaRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver_id")
	}

	cmd, err := commands.NewAssignByAreaCommand(driverID, req.Zip, req.City)
	if err != nil {
		return fail(ctx, err)
	}

	assigned, err := s.assignByAreaHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignedResponse{Assigned: assigned})
}

// RunAssignmentRules handles POST /api/v1/assignments/run.
func (s *Server) RunAssignmentRules(ctx echo.Context) error {
	var req RunRulesRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRunAssignmentRulesCommand(
		parcel.Status(req.Status), req.DryRun, req.Notes,
	)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.runRulesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RunRulesResponse{
		Assigned: result.Assigned,
		BatchID:  result.BatchID.String(),
		DryRun:   req.DryRun,
	})
}

// GetAssignmentLog handles GET /api/v1/assignments/batches.
func (s *Server) GetAssignmentLog(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewAssignmentLogQuery(limit)
	if err != nil {
		return fail(ctx, err)
	}

	log, err := s.assignmentLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]BatchResponse, len(log))
	for i, row := range log {
		response[i] = BatchResponse{
			ID:           row.BatchID.String(),
			FilterStatus: string(row.FilterStatus),
			FilterZip:    row.FilterZip,
			FilterCity:   row.FilterCity,
			Total:        row.Total,
			Assigned:     row.Assigned,
			DryRun:       row.DryRun,
			Notes:        row.Notes,
			StartedAt:    row.StartedAt,
			EndedAt:      row.EndedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartRoute handles POST /api/v1/drivers/:id/start-route.
func (s *Server) StartRoute(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewStartRouteCommand(driverID)
	if err != nil {
		return fail(ctx, err)
	}

	started, err := s.startRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignedResponse{Assigned: started})
}

// ConfirmDelivery handles POST /api/v1/packages/:id/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	packageID, driverID, req, err := s.bindAttempt(ctx)
	if err != nil {
		return err
	}

	location, err := attemptLocation(req)
	if err != nil {
		return fail(ctx, err)
	}

	photos, err := photosFromRequest(req.Photos)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(
		packageID, driverID, req.HasEditPrivilege, location, req.Notes, photos,
	)
	if err != nil {
		return fail(ctx, err)
	}

	attemptNo, err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AttemptResponse{AttemptNo: attemptNo})
}

// FailDelivery handles POST /api/v1/packages/:id/fail.
func (s *Server) FailDelivery(ctx echo.Context) error {
	packageID, driverID, req, err := s.bindAttempt(ctx)
	if err != nil {
		return err
	}

	location, err := attemptLocation(req)
	if err != nil {
		return fail(ctx, err)
	}

	photos, err := photosFromRequest(req.Photos)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewFailDeliveryCommand(
		packageID, driverID, req.HasEditPrivilege, req.ReasonCode,
		location, req.Notes, photos,
	)
	if err != nil {
		return fail(ctx, err)
	}

	attemptNo, err := s.failDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AttemptResponse{AttemptNo: attemptNo})
}

// GetPackageHistory handles GET /api/v1/packages/:id/history.
func (s *Server) GetPackageHistory(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	query, err := queries.NewPackageHistoryQuery(packageID)
	if err != nil {
		return fail(ctx, err)
	}

	history, err := s.historyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]HistoryEventResponse, len(history))
	for i, row := range history {
		entry := HistoryEventResponse{
			ID:         row.EventID.String(),
			EventType:  string(row.EventType),
			StatusFrom: string(row.StatusFrom),
			StatusTo:   string(row.StatusTo),
			At:         row.At,
			DriverName: row.DriverName,
			Notes:      row.Notes,
		}
		if row.DriverID != nil {
			entry.DriverID = row.DriverID.String()
		}
		if row.Location != nil {
			entry.Location = &GeoPointRequest{
				Lat: row.Location.Lat(),
				Lon: row.Location.Lon(),
			}
		}
		response[i] = entry
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(driverID, req.Name, req.LicenseNumber)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: driverID.String()})
}

// DeleteDriver handles DELETE /api/v1/drivers/:id.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRule handles POST /api/v1/rules.
func (s *Server) CreateRule(ctx echo.Context) error {
	var req CreateRuleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver_id")
	}

	ruleID := kernel.NewUUID()
	cmd, err := commands.NewCreateRuleCommand(
		ruleID, assignment.RuleType(req.RuleType), req.Pattern, driverID, req.Priority,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createRuleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: ruleID.String()})
}

// GetProductivityReport handles GET /api/v1/reports/productivity.
func (s *Server) GetProductivityReport(ctx echo.Context) error {
	var driverID, warehouseID *kernel.UUID

	if raw := ctx.QueryParam("driver_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid driver_id")
		}
		driverID = &id
	}
	if raw := ctx.QueryParam("warehouse_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid warehouse_id")
		}
		warehouseID = &id
	}

	query, err := queries.NewProductivityReportQuery(
		ctx.QueryParam("date_from"), ctx.QueryParam("date_to"), driverID, warehouseID,
	)
	if err != nil {
		return fail(ctx, err)
	}

	report, err := s.productivityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]ProductivityRowResponse, len(report))
	for i, row := range report {
		response[i] = ProductivityRowResponse{
			DriverID:         row.DriverID.String(),
			DriverName:       row.DriverName,
			Total:            row.Total,
			Delivered:        row.Delivered,
			Failed:           row.Failed,
			OutForNow:        row.OutForNow,
			Attempts:         row.Attempts,
			AvgAttempts:      row.AvgAttempts,
			SuccessRate:      row.SuccessRate,
			FirstOFDAt:       row.FirstOFDAt,
			LastEventAt:      row.LastEventAt,
			LastDelivered:    row.LastDelivered,
			ProductiveHours:  row.ProductiveHours,
			DeliveredPerHour: row.DeliveredPerHour,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetInventory handles GET /api/v1/reports/inventory.
func (s *Server) GetInventory(ctx echo.Context) error {
	query := queries.NewInventoryByStatusQuery()

	inventory, err := s.inventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]InventoryRowResponse, len(inventory))
	for i, row := range inventory {
		response[i] = InventoryRowResponse{
			Status: string(row.Status),
			Count:  row.Count,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// bindAttempt parses the shared parts of the confirm and fail endpoints.
// On failure the response has already been written and the returned error is
// what the echo handler should return.
func (s *Server) bindAttempt(
	ctx echo.Context,
) (kernel.UUID, kernel.UUID, AttemptRequest, error) {
	var req AttemptRequest

	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, req, badRequest(ctx, "Invalid package id")
	}

	if err = ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, req, badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, req, badRequest(ctx, "Invalid driver_id")
	}

	return packageID, driverID, req, nil
}

// attemptLocation extracts the GPS evidence of a confirm/fail request. A body
// without a location key is rejected; an explicit (0, 0) is a valid point.
func attemptLocation(req AttemptRequest) (kernel.GeoPoint, error) {
	if req.Location == nil {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("location")
	}
	return kernel.NewGeoPoint(req.Location.Lat, req.Location.Lon)
}

func photosFromRequest(reqs []PodPhotoRequest) ([]parcel.PodPhoto, error) {
	if len(reqs) == 0 {
		return nil, nil
	}

	photos := make([]parcel.PodPhoto, 0, len(reqs))
	for _, req := range reqs {
		var location *kernel.GeoPoint
		if req.Location != nil {
			point, err := kernel.NewGeoPoint(req.Location.Lat, req.Location.Lon)
			if err != nil {
				return nil, err
			}
			location = &point
		}

		photo, err := parcel.NewPodPhoto(
			req.Path, req.Checksum, req.MimeType, req.SizeBytes, req.TakenAt, location,
		)
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}

	return photos, nil
}
