package http

import (
	"github.com/gin-gonic/gin"

	"task-quickadd/internal/model"
	"task-quickadd/pkg/response"
)

// scopeFromRequest derives the caller identity. The service carries no auth
// layer, so the optional X-User-ID header is trusted as-is; drafts created
// without it are attributed to "anonymous".
func scopeFromRequest(c *gin.Context) model.Scope {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = "anonymous"
	}
	return model.Scope{UserID: userID}
}

// Preview godoc
// @Summary     Parse a task line
// @Description Parses one line of natural task-entry text and returns the structured reading plus display badges.
// @Tags        Quickadd
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Raw task text"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quickadd/parse [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Preview(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// Detect godoc
// @Summary     Probe whether text looks parseable
// @Description Cheap check meant for per-keystroke calls: reports whether the text contains any schedulable phrase without returning the full parse.
// @Tags        Quickadd
// @Accept      json
// @Produce     json
// @Param       body body detectReq true "Raw task text"
// @Success     200 {object} detectResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/quickadd/detect [POST]
func (h *handler) Detect(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetectReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detect(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Detect: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetectResp(output))
}

// Schedule godoc
// @Summary     Parse and schedule a task line
// @Description Parses the text, assembles a task draft and, when a calendar client is configured, pushes a calendar event. The draft is returned for the caller to persist; this service stores nothing.
// @Tags        Quickadd
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Raw task text and optional event duration"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request - empty text or nothing to schedule"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quickadd/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}
