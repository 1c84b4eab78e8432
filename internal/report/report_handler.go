package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/leave"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/shared/apperror"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetMonthly(c *gin.Context) {
	year, month := yearMonthQuery(c)

	resp, err := h.service.Monthly(c.Request.Context(), year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetSummary(c *gin.Context) {
	resp, err := h.service.Summary(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportMonthly(c *gin.Context) {
	year, month := yearMonthQuery(c)
	format := c.DefaultQuery("format", "csv")

	file, err := h.service.ExportMonthly(c.Request.Context(), year, month, format)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writeAttachment(c, file)
}

func (h *Handler) ExportLeaves(c *gin.Context) {
	filter := leave.ListFilter{
		Status:     c.Query("status"),
		LeaveType:  c.Query("leave_type"),
		Department: c.Query("department"),
		DateFrom:   c.Query("date_from"),
		Search:     c.Query("search"),
	}
	format := c.DefaultQuery("format", "csv")

	file, err := h.service.ExportLeaves(c.Request.Context(), filter, format)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writeAttachment(c, file)
}

func writeAttachment(c *gin.Context, file ExportFile) {
	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func yearMonthQuery(c *gin.Context) (int, int) {
	now := time.Now().UTC()

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		year = now.Year()
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		month = int(now.Month())
	}
	return year, month
}
