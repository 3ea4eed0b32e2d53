package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"stylistapi/models"
	"stylistapi/storage"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string                  `json:"message"`
	Errors  models.ValidationErrors `json:"errors"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

const invalidIDMessage = "Invalid ID format"

var errInvalidID = errors.New(invalidIDMessage)

// pathID parses the :id parameter. Ids that are well formed but can never
// exist (zero, negative, out of range) come back as storage.ErrNotFound.
func pathID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	if strings.HasPrefix(raw, "+") {
		return 0, errInvalidID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, storage.ErrNotFound
		}
		return 0, errInvalidID
	}
	if id <= 0 {
		return 0, storage.ErrNotFound
	}
	return uint(id), nil
}

func requestLogger(c echo.Context) logrus.FieldLogger {
	if log, ok := c.Get("__log").(logrus.FieldLogger); ok {
		return log
	}
	return logrus.StandardLogger()
}

func captureException(c echo.Context, err error) {
	if hub := sentryecho.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
		return
	}
	sentry.CaptureException(err)
}

// internalError logs and reports err and answers 500 with message.
func internalError(c echo.Context, message string, err error) error {
	requestLogger(c).WithError(err).Error(message)
	captureException(c, err)
	return c.JSON(http.StatusInternalServerError, MessageResponse{Message: message})
}

func validationError(c echo.Context, message string, err error) error {
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Message: message, Errors: verrs})
	}
	return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Message: message,
		Errors:  models.ValidationErrors{{Message: err.Error()}},
	})
}

func readBody(c echo.Context) ([]byte, error) {
	return io.ReadAll(c.Request().Body)
}

func listEntities[T any](c echo.Context, failMessage string, list func(ctx context.Context) ([]T, error)) error {
	items, err := list(c.Request().Context())
	if err != nil {
		return internalError(c, failMessage, err)
	}
	return c.JSON(http.StatusOK, items)
}

func getEntity[T any](c echo.Context, notFoundMessage, failMessage string, get func(ctx context.Context, id uint) (*T, error)) error {
	id, err := pathID(c)
	if errors.Is(err, errInvalidID) {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: invalidIDMessage})
	}
	if err == nil {
		var item *T
		item, err = get(c.Request().Context(), id)
		if err == nil {
			return c.JSON(http.StatusOK, item)
		}
	}
	if errors.Is(err, storage.ErrNotFound) {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: notFoundMessage})
	}
	return internalError(c, failMessage, err)
}

func createEntity[In any, T any](c echo.Context, iv *models.InsertValidator, failMessage string, create func(ctx context.Context, in *In) (*T, error)) error {
	body, err := readBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Could not read request body"})
	}
	in, err := models.DecodeInsert[In](iv, body)
	if err != nil {
		return validationError(c, "Validation error", err)
	}
	created, err := create(c.Request().Context(), in)
	if err != nil {
		return internalError(c, failMessage, err)
	}
	return c.JSON(http.StatusCreated, created)
}
