package handler

import (
	"github.com/gin-gonic/gin"

	"stayhub/internal/facade"
	"stayhub/internal/transport/http/response"
)

type ReviewHandler struct {
	f *facade.Facade
}

func NewReviewHandler(f *facade.Facade) *ReviewHandler { return &ReviewHandler{f: f} }

func (h *ReviewHandler) Mount(g *gin.RouterGroup) {
	g.POST("/reviews", h.Create)
	g.GET("/reviews", h.List)
	g.GET("/reviews/:id", h.Get)
	g.PUT("/reviews/:id", h.Update)
	g.DELETE("/reviews/:id", h.Delete)
}

type createReviewReq struct {
	Text    string `json:"text" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	UserID  string `json:"user_id" binding:"required"`
	PlaceID string `json:"place_id" binding:"required"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var in createReviewReq
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	r, err := h.f.CreateReview(c.Request.Context(), facade.CreateReviewInput{
		Text:    in.Text,
		Rating:  in.Rating,
		UserID:  in.UserID,
		PlaceID: in.PlaceID,
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, r)
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.f.GetAllReviews(c.Request.Context())
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, reviews)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	r, err := h.f.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Err(c, err)
		return
	}
	if r == nil {
		response.NotFound(c, "review not found")
		return
	}
	response.OK(c, r)
}

// Update expects the author's user_id in the body alongside the text/rating
// changes; anything else in the payload is ignored.
func (h *ReviewHandler) Update(c *gin.Context) {
	fields := map[string]any{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	userID, _ := fields["user_id"].(string)
	r, err := h.f.UpdateReview(c.Request.Context(), c.Param("id"), userID, fields)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, r)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	ok, err := h.f.DeleteReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Err(c, err)
		return
	}
	if !ok {
		response.NotFound(c, "review not found")
		return
	}
	response.OK(c, gin.H{"message": "review deleted"})
}
