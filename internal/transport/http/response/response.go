// Package response writes the three envelope shapes the API uses: admin
// single-item {status, data, message}, admin list {data, meta}, and public
// {success, data, meta}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketing-cms/internal/query"
)

type adminBody struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type listBody struct {
	Data interface{} `json:"data"`
	Meta query.Meta  `json:"meta"`
}

type publicBody struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *query.Meta `json:"meta,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK sends an admin success envelope.
func OK(c *gin.Context, data interface{}, msg string) {
	c.JSON(http.StatusOK, adminBody{Status: "success", Data: data, Message: msg})
}

// Created sends an admin success envelope with 201.
func Created(c *gin.Context, data interface{}, msg string) {
	c.JSON(http.StatusCreated, adminBody{Status: "success", Data: data, Message: msg})
}

// List sends the {data, meta} list envelope.
func List(c *gin.Context, data interface{}, meta query.Meta) {
	c.JSON(http.StatusOK, listBody{Data: data, Meta: meta})
}

// Error sends an admin error envelope with the given status code.
func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, adminBody{Status: "error", Message: msg})
}

// Errors sends a 400 admin envelope carrying a validation error list.
func Errors(c *gin.Context, msgs []string) {
	c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": msgs, "message": msgs[0]})
}

// ConflictData sends a 409 carrying structured data, used for usage reports
// on guarded deletes.
func ConflictData(c *gin.Context, data interface{}, msg string) {
	c.JSON(http.StatusConflict, adminBody{Status: "error", Data: data, Message: msg})
}

func BadRequest(c *gin.Context, msg string)   { Error(c, http.StatusBadRequest, msg) }
func Unauthorized(c *gin.Context, msg string) { Error(c, http.StatusUnauthorized, msg) }
func Forbidden(c *gin.Context, msg string)    { Error(c, http.StatusForbidden, msg) }
func NotFound(c *gin.Context, msg string)     { Error(c, http.StatusNotFound, msg) }
func Conflict(c *gin.Context, msg string)     { Error(c, http.StatusConflict, msg) }
func Internal(c *gin.Context, msg string)     { Error(c, http.StatusInternalServerError, msg) }

// PublicOK sends the public success envelope.
func PublicOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, publicBody{Success: true, Data: data})
}

// PublicList sends the public success envelope with pagination meta.
func PublicList(c *gin.Context, data interface{}, meta query.Meta) {
	c.JSON(http.StatusOK, publicBody{Success: true, Data: data, Meta: &meta})
}

// PublicError sends the public error envelope.
func PublicError(c *gin.Context, code int, msg string) {
	c.JSON(code, publicBody{Success: false, Message: msg})
}
