package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/atul-mandavkar/inotebook-backend/internal/auth"
	dom "github.com/atul-mandavkar/inotebook-backend/internal/domain"
	"github.com/atul-mandavkar/inotebook-backend/internal/dto"
	"github.com/atul-mandavkar/inotebook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NoteHandler handles the note CRUD endpoints. Every route behind it runs
// after auth.RequireToken, so the caller identity is always in context.
type NoteHandler struct {
	svc *service.NoteService
}

// NewNoteHandler returns a new NoteHandler.
func NewNoteHandler(svc *service.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// List godoc
// @Summary      List the caller's notes
// @Tags         notes
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  dto.ListNotesResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /note/fetchAllNotes [get]
func (h *NoteHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		log.Printf("list notes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "some internal error occurred"})
		return
	}
	c.JSON(http.StatusOK, dto.ListNotesResponse{Items: notesToResponses(list)})
}

// Create godoc
// @Summary      Add a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      dto.CreateNoteRequest  true  "Note body"
// @Success      201   {object}  dto.NoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /note/addNote [post]
func (h *NoteHandler) Create(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError(err))
		return
	}
	userID := auth.UserIDFromContext(c)
	n, err := h.svc.Create(c.Request.Context(), userID, string(req.Title), string(req.Description), req.Tag)
	if err != nil {
		log.Printf("create note: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "some internal error occurred"})
		return
	}
	c.JSON(http.StatusCreated, noteToResponse(n))
}

// Update godoc
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int  true  "Note ID"
// @Param        body  body      dto.UpdateNoteRequest  true  "Partial update"
// @Success      200   {object}  dto.NoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /note/updateNote/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError(err))
		return
	}
	userID := auth.UserIDFromContext(c)
	n, err := h.svc.Update(c.Request.Context(), userID, id, (*string)(req.Title), (*string)(req.Description), req.Tag)
	if err != nil {
		h.renderMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, noteToResponse(n))
}

// Delete godoc
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Note ID"
// @Success      200  {object}  dto.NoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /note/deleteNote/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	n, err := h.svc.Delete(c.Request.Context(), userID, id)
	if err != nil {
		h.renderMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, noteToResponse(n))
}

func (h *NoteHandler) renderMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
	default:
		log.Printf("mutate note: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "some internal error occurred"})
	}
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func noteToResponse(n dom.Note) dto.NoteResponse {
	return dto.NoteResponse{
		ID:          n.ID,
		UserID:      n.UserID,
		Title:       n.Title,
		Description: n.Description,
		Tag:         n.Tag,
		CreatedAt:   n.CreatedAt,
	}
}

func notesToResponses(list []dom.Note) []dto.NoteResponse {
	out := make([]dto.NoteResponse, 0, len(list))
	for _, n := range list {
		out = append(out, noteToResponse(n))
	}
	return out
}
