package handler

import (
	"github.com/gin-gonic/gin"

	"stayhub/internal/facade"
	"stayhub/internal/transport/http/response"
)

type PlaceHandler struct {
	f *facade.Facade
}

func NewPlaceHandler(f *facade.Facade) *PlaceHandler { return &PlaceHandler{f: f} }

func (h *PlaceHandler) Mount(g *gin.RouterGroup) {
	g.POST("/places", h.Create)
	g.GET("/places", h.List)
	g.GET("/places/:id", h.Get)
	g.PUT("/places/:id", h.Update)
	g.DELETE("/places/:id", h.Delete)
	g.GET("/places/:id/reviews", h.ListReviews)
	g.POST("/places/:id/amenities/:amenity_id", h.AddAmenity)
	g.DELETE("/places/:id/amenities/:amenity_id", h.RemoveAmenity)
}

// Latitude/longitude are pointers so that 0 survives the required check.
type createPlaceReq struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       float64  `json:"price" binding:"required"`
	Latitude    *float64 `json:"latitude" binding:"required"`
	Longitude   *float64 `json:"longitude" binding:"required"`
	OwnerID     string   `json:"owner_id" binding:"required"`
	Amenities   []string `json:"amenities"`
}

func (h *PlaceHandler) Create(c *gin.Context) {
	var in createPlaceReq
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.f.CreatePlace(c.Request.Context(), facade.CreatePlaceInput{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Latitude:    *in.Latitude,
		Longitude:   *in.Longitude,
		OwnerID:     in.OwnerID,
		AmenityIDs:  in.Amenities,
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, p)
}

func (h *PlaceHandler) List(c *gin.Context) {
	places, err := h.f.GetAllPlaces(c.Request.Context())
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, places)
}

func (h *PlaceHandler) Get(c *gin.Context) {
	p, err := h.f.GetPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Err(c, err)
		return
	}
	if p == nil {
		response.NotFound(c, "place not found")
		return
	}
	response.OK(c, p)
}

func (h *PlaceHandler) Update(c *gin.Context) {
	fields := map[string]any{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.f.UpdatePlace(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, p)
}

func (h *PlaceHandler) Delete(c *gin.Context) {
	ok, err := h.f.DeletePlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Err(c, err)
		return
	}
	if !ok {
		response.NotFound(c, "place not found")
		return
	}
	response.OK(c, gin.H{"message": "place deleted"})
}

func (h *PlaceHandler) ListReviews(c *gin.Context) {
	reviews, err := h.f.GetReviewsByPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, reviews)
}

func (h *PlaceHandler) AddAmenity(c *gin.Context) {
	p, err := h.f.AddAmenityToPlace(c.Request.Context(), c.Param("id"), c.Param("amenity_id"))
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, p)
}

func (h *PlaceHandler) RemoveAmenity(c *gin.Context) {
	p, err := h.f.RemoveAmenityFromPlace(c.Request.Context(), c.Param("id"), c.Param("amenity_id"))
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, p)
}
