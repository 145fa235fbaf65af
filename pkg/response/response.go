package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/trackademic-api/pkg/errors"
)

// ErrorBody is the payload of every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// DeleteBody confirms a removed document.
type DeleteBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JSON sends the payload as-is; the frontend reads bare documents and arrays.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Deleted confirms removal of resource id.
func Deleted(c *gin.Context, resource, id string) {
	OK(c, DeleteBody{Success: true, Message: fmt.Sprintf("%s %s deleted", resource, id)})
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, ErrorBody{Error: appErr.Message})
}

// Bytes writes a rendered file such as an export.
func Bytes(c *gin.Context, contentType, filename string, payload []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, contentType, payload)
}
