package utils

import (
	"log"
	"net/http"

	"main/apperr"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int         `json:"-"`
	Kind    string      `json:"kind,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success responses

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &Response{
		Status: http.StatusOK,
		Data:   data,
	})
}

// Created responds 201 with the stored document and a Location header
// pointing at it.
func Created(c *gin.Context, location string, data interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, &Response{
		Status: http.StatusCreated,
		Data:   data,
	})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, &Response{
		Status: http.StatusBadRequest,
		Error:  message,
	})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, &Response{
		Status: http.StatusNotFound,
		Error:  message,
	})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, &Response{
		Status: http.StatusInternalServerError,
		Error:  message,
	})
}

// Error renders a classified error with its stable kind. Storage failures
// are logged in full and flattened to a generic message; duplicate names
// report 400, not 409.
func Error(c *gin.Context, err error) {
	appErr := apperr.Classify("", err)

	status := http.StatusBadRequest
	switch appErr.Kind {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindStorage:
		status = http.StatusInternalServerError
		log.Printf("storage failure: %v [request_id=%s]", appErr.Err, c.GetString("request_id"))
	}

	c.JSON(status, &Response{
		Status: status,
		Kind:   string(appErr.Kind),
		Error:  appErr.Message,
	})
}
