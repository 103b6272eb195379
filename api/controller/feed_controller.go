package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bingelog/bingelog-backend/domain"
	"github.com/bingelog/bingelog-backend/metadata"
)

type FeedController struct {
	RefreshUsecase domain.FeedRefreshUsecase
	ReadUsecase    domain.FeedReadUsecase
	Metadata       *metadata.Client
	Logger         *logrus.Logger
}

func NewFeedController(
	refresh domain.FeedRefreshUsecase,
	read domain.FeedReadUsecase,
	metadataClient *metadata.Client,
	logger *logrus.Logger,
) *FeedController {
	return &FeedController{
		RefreshUsecase: refresh,
		ReadUsecase:    read,
		Metadata:       metadataClient,
		Logger:         logger,
	}
}

// Refresh recomputes one user's feed.
// POST /api/feed/refresh {"user_id": "..."}
func (c *FeedController) Refresh(ctx *gin.Context) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", "request body must be JSON with a user_id field")
		return
	}

	result, err := c.RefreshUsecase.Refresh(ctx.Request.Context(), req.UserID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

type scoredPostView struct {
	domain.ScoredPost
	ShowTitle string `json:"show_title,omitempty"`
}

// TopScores returns a user's materialized feed rows with their score
// breakdowns, for inspection.
// GET /api/feed/:userId?limit=50&enrich=true
func (c *FeedController) TopScores(ctx *gin.Context) {
	userID := ctx.Param("userId")
	if userID == "" {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_USER_ID", "user id is required")
		return
	}

	limit := 50
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			ErrorResponse(ctx, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	rows, err := c.ReadUsecase.TopScores(ctx.Request.Context(), userID, limit)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	views := make([]scoredPostView, 0, len(rows))
	for _, row := range rows {
		views = append(views, scoredPostView{ScoredPost: row})
	}
	if ctx.Query("enrich") == "true" && c.Metadata != nil {
		c.enrichShowTitles(ctx, views)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"count":   len(views),
		"scores":  views,
	})
}

// enrichShowTitles attaches show titles from the metadata API. Enrichment is
// best-effort; a metadata failure never fails the read.
func (c *FeedController) enrichShowTitles(ctx *gin.Context, views []scoredPostView) {
	titles := make(map[string]string)
	for i := range views {
		showID := views[i].ShowID
		if showID == "" {
			continue
		}
		title, seen := titles[showID]
		if !seen {
			show, err := c.Metadata.GetShow(ctx.Request.Context(), showID)
			if err != nil {
				if c.Logger != nil {
					c.Logger.WithError(err).WithField("show_id", showID).Warn("show metadata lookup failed")
				}
				titles[showID] = ""
				continue
			}
			title = show.Title
			titles[showID] = title
		}
		views[i].ShowTitle = title
	}
}

func (c *FeedController) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_USER_ID", err.Error())
	case errors.Is(err, domain.ErrRateLimited):
		ErrorResponse(ctx, http.StatusTooManyRequests, "RATE_LIMITED", err.Error())
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		ErrorResponse(ctx, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", err.Error())
	default:
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
	}
}
