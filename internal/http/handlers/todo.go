package handlers

import (
	"net/http"
	"strconv"

	"todo_backend/internal/logger"
	"todo_backend/internal/service"
	"todo_backend/internal/ws"

	"github.com/gin-gonic/gin"
)

// GetTodos returns every stored todo.
func (h *Handler) GetTodos(c *gin.Context) {
	todos, err := h.Todos.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("failed to list todos", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list todos"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// GetCompletedTodos returns only the todos marked complete.
func (h *Handler) GetCompletedTodos(c *gin.Context) {
	todos, err := h.Todos.GetCompleted(c.Request.Context())
	if err != nil {
		logger.Error("failed to list completed todos", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list todos"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// GetTodo returns a single todo by id, or 404.
func (h *Handler) GetTodo(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}

	todo, err := h.Todos.GetByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("failed to get todo", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get todo"})
		return
	}
	if todo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
		return
	}
	c.JSON(http.StatusOK, todo)
}

// CreateTodo stores a new todo from the request body and returns it with
// the assigned id.
func (h *Handler) CreateTodo(c *gin.Context) {
	var req service.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	todo, err := h.Todos.Create(c.Request.Context(), req)
	if err != nil {
		logger.Error("failed to create todo", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create todo"})
		return
	}

	h.notify(ws.EventTodoCreated, todo)
	c.JSON(http.StatusCreated, todo)
}

// UpdateTodo replaces name and isComplete of an existing todo.
func (h *Handler) UpdateTodo(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}

	var req service.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.Todos.Update(c.Request.Context(), id, req)
	if err != nil {
		logger.Error("failed to update todo", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update todo"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
		return
	}

	h.notify(ws.EventTodoUpdated, service.TodoResponse{ID: id, Name: req.Name, IsComplete: req.IsComplete})
	c.Status(http.StatusNoContent)
}

// DeleteTodo removes a todo by id.
func (h *Handler) DeleteTodo(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}

	deleted, err := h.Todos.Delete(c.Request.Context(), id)
	if err != nil {
		logger.Error("failed to delete todo", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete todo"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
		return
	}

	h.notify(ws.EventTodoDeleted, service.TodoResponse{ID: id})
	c.Status(http.StatusNoContent)
}

// todoID parses the :id path parameter, answering 400 itself on garbage.
func todoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return 0, false
	}
	return id, true
}
