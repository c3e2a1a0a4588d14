package handler

import (
	"github.com/gin-gonic/gin"

	"stayhub/internal/facade"
	"stayhub/internal/transport/http/response"
)

type UserHandler struct {
	f *facade.Facade
}

func NewUserHandler(f *facade.Facade) *UserHandler { return &UserHandler{f: f} }

func (h *UserHandler) Mount(g *gin.RouterGroup) {
	g.POST("/users", h.Create)
	g.GET("/users", h.List)
	g.GET("/users/:id", h.Get)
	g.PUT("/users/:id", h.Update)
	g.DELETE("/users/:id", h.Delete)
}

type createUserReq struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	IsAdmin   bool   `json:"is_admin"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var in createUserReq
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.f.CreateUser(c.Request.Context(), facade.CreateUserInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		IsAdmin:   in.IsAdmin,
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, u)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.f.SearchUsers(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.f.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Err(c, err)
		return
	}
	if u == nil {
		response.NotFound(c, "user not found")
		return
	}
	response.OK(c, u)
}

func (h *UserHandler) Update(c *gin.Context) {
	fields := map[string]any{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.f.UpdateUser(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, u)
}

func (h *UserHandler) Delete(c *gin.Context) {
	ok, err := h.f.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Err(c, err)
		return
	}
	if !ok {
		response.NotFound(c, "user not found")
		return
	}
	response.OK(c, gin.H{"message": "user deleted"})
}
