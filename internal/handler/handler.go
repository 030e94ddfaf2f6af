package handler

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/stpnv0/AttendanceDesk/internal/desk"
	"github.com/stpnv0/AttendanceDesk/internal/domain"
	"github.com/stpnv0/AttendanceDesk/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type DeskSvc interface {
	Open(ctx context.Context, eventID string) (*desk.View, error)
	View(ctx context.Context, eventID string, f domain.RosterFilter) (*desk.View, error)
	Close(ctx context.Context, eventID string) error
	Refresh(ctx context.Context, eventID string) (*desk.View, error)
	Scan(ctx context.Context, eventID, code string) (*domain.CheckInResult, *desk.View, error)
	Enqueue(ctx context.Context, eventID, code string) ([]desk.QueueEntry, error)
	ProcessQueue(ctx context.Context, eventID string) (*domain.BatchSummary, *desk.View, error)
	Select(ctx context.Context, eventID, registrationID string) ([]string, error)
	Deselect(ctx context.Context, eventID, registrationID string) ([]string, error)
	SubmitSelection(ctx context.Context, eventID string) (*domain.BatchSummary, *desk.View, error)
	MarkManual(ctx context.Context, eventID, registrationID string) (*domain.CheckInResult, *desk.View, error)
	Export(ctx context.Context, eventID string) (*domain.Report, error)
}

type JournalSvc interface {
	ListByEvent(ctx context.Context, eventID string, limit int) ([]*domain.JournalEntry, error)
}

type BadgeSvc interface {
	QRCode(code string, size int) ([]byte, error)
}

type Handler struct {
	deskService    DeskSvc
	journalService JournalSvc
	badgeService   BadgeSvc
}

func NewHandler(deskService DeskSvc, journalService JournalSvc, badgeService BadgeSvc) *Handler {
	return &Handler{
		deskService:    deskService,
		journalService: journalService,
		badgeService:   badgeService,
	}
}

// Desk

func (h *Handler) OpenDesk(c *ginext.Context) {
	view, err := h.deskService.Open(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeskResponse(view))
}

func (h *Handler) GetDesk(c *ginext.Context) {
	var q dto.RosterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	filter := domain.RosterFilter{Query: q.Q}
	if q.Status != "" {
		filter.Status = domain.RegistrationStatus(q.Status)
		if !filter.Status.Valid() {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid status"})
			return
		}
	}

	view, err := h.deskService.View(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeskResponse(view))
}

func (h *Handler) CloseDesk(c *ginext.Context) {
	if err := h.deskService.Close(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RefreshDesk(c *ginext.Context) {
	view, err := h.deskService.Refresh(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeskResponse(view))
}

// Check-in

func (h *Handler) Scan(c *ginext.Context) {
	var req dto.CodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, view, err := h.deskService.Scan(c.Request.Context(), c.Param("id"), req.Code)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckInResponse(res, view))
}

func (h *Handler) MarkAttendance(c *ginext.Context) {
	res, view, err := h.deskService.MarkManual(c.Request.Context(), c.Param("id"), c.Param("regId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckInResponse(res, view))
}

func (h *Handler) Enqueue(c *ginext.Context) {
	var req dto.CodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	queue, err := h.deskService.Enqueue(c.Request.Context(), c.Param("id"), req.Code)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.QueueResponse{Queue: dto.ToQueueResponse(queue)})
}

func (h *Handler) ProcessQueue(c *ginext.Context) {
	summary, view, err := h.deskService.ProcessQueue(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBatchResponse(summary, view))
}

func (h *Handler) Select(c *ginext.Context) {
	var req dto.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	selection, err := h.deskService.Select(c.Request.Context(), c.Param("id"), req.RegistrationID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SelectionResponse{Selection: selection})
}

func (h *Handler) Deselect(c *ginext.Context) {
	selection, err := h.deskService.Deselect(c.Request.Context(), c.Param("id"), c.Param("regId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SelectionResponse{Selection: selection})
}

func (h *Handler) SubmitSelection(c *ginext.Context) {
	summary, view, err := h.deskService.SubmitSelection(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBatchResponse(summary, view))
}

// Reports

func (h *Handler) ExportReport(c *ginext.Context) {
	report, err := h.deskService.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", attachment(report.FileName))
	c.Data(http.StatusOK, report.ContentType, report.Data)
}

func (h *Handler) CheckInLog(c *ginext.Context) {
	var q dto.JournalQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	entries, err := h.journalService.ListByEvent(c.Request.Context(), c.Param("id"), q.Limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.JournalEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToJournalEntryResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Badges

func (h *Handler) BadgeQRCode(c *ginext.Context) {
	var q dto.QRCodeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	png, err := h.badgeService.QRCode(q.Code, q.Size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.UserMessage(err)})

	case errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrDeskNotOpen):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.UserMessage(err)})

	case errors.Is(err, domain.ErrActionInProgress),
		errors.Is(err, domain.ErrNotSelectable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: domain.UserMessage(err)})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validationMessage(err)})

	case errors.Is(err, domain.ErrExportFailed),
		errors.Is(err, domain.ErrTransient):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: domain.UserMessage(err)})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// validationMessage strips the sentinel prefix so the operator sees what
// was wrong with the input.
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, domain.ErrValidation.Error()+": "); i >= 0 {
		return msg[i+len(domain.ErrValidation.Error())+2:]
	}
	return msg
}

// attachment quotes or RFC 2231 encodes the upstream file name as needed.
func attachment(fileName string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": fileName}); v != "" {
		return v
	}
	return "attachment"
}
