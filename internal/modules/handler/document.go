package handler

import (
	"io"
	"net/http"

	"github.com/docvault-io/docvault/internal/middleware"
	"github.com/docvault-io/docvault/internal/modules/serializer"
	"github.com/docvault-io/docvault/internal/modules/service"
	"github.com/docvault-io/docvault/internal/pkg/apperr"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	svc service.DocumentService
}

func NewDocumentHandler(s service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: s}
}

// UploadDocument godoc
//
//	@Summary		Upload document
//	@Description	Upload a PDF, DOC or DOCX into a project (member only)
//	@Tags			document
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			project_id	path		string	true	"Project ID"	Format(uuid)
//	@Param			file		formData	file	true	"Document file"
//	@Param			title		formData	string	false	"Title, defaults to the filename"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Document}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/project/{project_id}/documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		serializer.Fail(c, apperr.InvalidInput("file is required"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	doc, err := h.svc.Upload(c.Request.Context(), service.UploadDocumentInput{
		ProjectID:  projectID,
		UploaderID: user.ID,
		Filename:   fh.Filename,
		Title:      c.PostForm("title"),
		Data:       data,
	})
	if err != nil {
		serializer.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: doc})
}

// ListDocuments godoc
//
//	@Summary		List documents
//	@Description	List a project's documents (member only)
//	@Tags			document
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Document}
//	@Failure		404	{object}	serializer.Response
//	@Router			/project/{project_id}/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	docs, err := h.svc.List(c.Request.Context(), projectID, user.ID)
	if err != nil {
		serializer.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: docs})
}

// GetDocument godoc
//
//	@Summary		Get document
//	@Description	Get a document the caller may see
//	@Tags			document
//	@Produce		json
//	@Param			document_id	path	string	true	"Document ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Document}
//	@Failure		404	{object}	serializer.Response
//	@Router			/document/{document_id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("document_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	doc, err := h.svc.Get(c.Request.Context(), documentID, user.ID)
	if err != nil {
		serializer.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: doc})
}

type RenameDocumentReq struct {
	Title string `json:"title" binding:"required"`
}

// RenameDocument godoc
//
//	@Summary		Rename document
//	@Description	Update a document's title
//	@Tags			document
//	@Accept			json
//	@Produce		json
//	@Param			document_id	path	string						true	"Document ID"	Format(uuid)
//	@Param			payload		body	handler.RenameDocumentReq	true	"Rename payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Document}
//	@Failure		404	{object}	serializer.Response
//	@Router			/document/{document_id} [put]
func (h *DocumentHandler) RenameDocument(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("document_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := RenameDocumentReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	doc, err := h.svc.Rename(c.Request.Context(), documentID, user.ID, req.Title)
	if err != nil {
		serializer.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: doc})
}

// DeleteDocument godoc
//
//	@Summary		Delete document
//	@Description	Delete the blob and the document record
//	@Tags			document
//	@Produce		json
//	@Param			document_id	path	string	true	"Document ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		204	"no content"
//	@Failure		404	{object}	serializer.Response
//	@Router			/document/{document_id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("document_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), documentID, user.ID); err != nil {
		serializer.Fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type DownloadURLOutput struct {
	URL string `json:"url"`
}

// DownloadDocument godoc
//
//	@Summary		Download document
//	@Description	Get a pre-signed download URL for the stored blob
//	@Tags			document
//	@Produce		json
//	@Param			document_id	path	string	true	"Document ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=handler.DownloadURLOutput}
//	@Failure		404	{object}	serializer.Response
//	@Router			/document/{document_id}/download [get]
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("document_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	url, err := h.svc.DownloadURL(c.Request.Context(), documentID, user.ID)
	if err != nil {
		serializer.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: DownloadURLOutput{URL: url}})
}
