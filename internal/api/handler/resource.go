package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/storage"
)

// resourceHooks lets a resource react to settled mutations (complaints
// fan out to Telegram). Both hooks are optional.
type resourceHooks[T any] struct {
	created func(*T)
	updated func(before, after *T)
}

// resource serves the uniform CRUD surface of one entity type. The same
// handler set backs all five dashboard screens.
type resource[T any] struct {
	h     *Handler
	store storage.Store[T]
	name  string
	hooks *resourceHooks[T]
}

func registerResource[T any](rg *gin.RouterGroup, h *Handler, path, name string, store storage.Store[T], hooks *resourceHooks[T]) {
	res := &resource[T]{h: h, store: store, name: name, hooks: hooks}
	rg.GET("/"+path, res.list)
	rg.GET("/"+path+"/:id", res.getOne)
	rg.POST("/"+path, res.create)
	rg.PUT("/"+path+"/:id", res.update)
	rg.DELETE("/"+path+"/:id", res.remove)
}

// list answers GET /<resource>?search=&page=&limit= with the envelope
// the dashboard tables consume.
func (r *resource[T]) list(c *gin.Context) {
	var filter models.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := r.store.FindPage(c.Request.Context(), filter)
	if err != nil {
		r.h.writeError(c, r.name, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"data": page.Items,
			"meta": gin.H{
				"total":       page.Total,
				"perPage":     page.PerPage,
				"currentPage": page.Page,
			},
		},
	})
}

func (r *resource[T]) getOne(c *gin.Context) {
	id, ok := r.paramID(c)
	if !ok {
		return
	}
	entity, err := r.store.FindOne(c.Request.Context(), id)
	if err != nil {
		r.h.writeError(c, r.name, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entity})
}

func (r *resource[T]) create(c *gin.Context) {
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := r.store.Create(c.Request.Context(), &entity); err != nil {
		r.h.writeError(c, r.name, err)
		return
	}
	if r.hooks != nil && r.hooks.created != nil {
		r.hooks.created(&entity)
	}
	c.JSON(http.StatusOK, gin.H{
		"data":    entity,
		"message": r.name + " created",
	})
}

func (r *resource[T]) update(c *gin.Context) {
	id, ok := r.paramID(c)
	if !ok {
		return
	}

	// Fetched up front so the updated hook can see the transition.
	before, err := r.store.FindOne(c.Request.Context(), id)
	if err != nil {
		r.h.writeError(c, r.name, err)
		return
	}

	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := r.store.Update(c.Request.Context(), id, &entity)
	if err != nil {
		r.h.writeError(c, r.name, err)
		return
	}
	if r.hooks != nil && r.hooks.updated != nil {
		r.hooks.updated(before, updated)
	}
	c.JSON(http.StatusOK, gin.H{
		"data":    updated,
		"message": r.name + " updated",
	})
}

func (r *resource[T]) remove(c *gin.Context) {
	id, ok := r.paramID(c)
	if !ok {
		return
	}
	deleted, err := r.store.Delete(c.Request.Context(), id)
	if err != nil {
		r.h.writeError(c, r.name, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":    deleted,
		"message": r.name + " deleted",
	})
}

func (r *resource[T]) paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
