package attendance

import (
	"net/http"
	"strconv"
	"time"

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
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.Mark(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByDate(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().UTC().Format("2006-01-02"))

	resp, err := h.service.GetByDate(c.Request.Context(), date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetEmployeeMonth(c *gin.Context) {
	year, month := yearMonthQuery(c)

	resp, err := h.service.GetEmployeeMonth(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetMine(c *gin.Context) {
	year, month := yearMonthQuery(c)

	resp, err := h.service.GetEmployeeMonth(c.Request.Context(), c.GetString("user_id"), year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
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
