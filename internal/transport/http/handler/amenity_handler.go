package handler

import (
	"github.com/gin-gonic/gin"

	"stayhub/internal/facade"
	"stayhub/internal/transport/http/response"
)

type AmenityHandler struct {
	f *facade.Facade
}

func NewAmenityHandler(f *facade.Facade) *AmenityHandler { return &AmenityHandler{f: f} }

func (h *AmenityHandler) Mount(g *gin.RouterGroup) {
	g.POST("/amenities", h.Create)
	g.GET("/amenities", h.List)
	g.GET("/amenities/:id", h.Get)
	g.PUT("/amenities/:id", h.Update)
	g.DELETE("/amenities/:id", h.Delete)
}

type createAmenityReq struct {
	Name string `json:"name"`
}

func (h *AmenityHandler) Create(c *gin.Context) {
	var in createAmenityReq
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	a, err := h.f.CreateAmenity(c.Request.Context(), in.Name)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, a)
}

func (h *AmenityHandler) List(c *gin.Context) {
	amenities, err := h.f.GetAllAmenities(c.Request.Context())
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, amenities)
}

func (h *AmenityHandler) Get(c *gin.Context) {
	a, err := h.f.GetAmenity(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Err(c, err)
		return
	}
	if a == nil {
		response.NotFound(c, "amenity not found")
		return
	}
	response.OK(c, a)
}

func (h *AmenityHandler) Update(c *gin.Context) {
	fields := map[string]any{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	a, err := h.f.UpdateAmenity(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, a)
}

func (h *AmenityHandler) Delete(c *gin.Context) {
	ok, err := h.f.DeleteAmenity(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Err(c, err)
		return
	}
	if !ok {
		response.NotFound(c, "amenity not found")
		return
	}
	response.OK(c, gin.H{"message": "amenity deleted"})
}
