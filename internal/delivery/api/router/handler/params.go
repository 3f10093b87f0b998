package handler

import (
	"net/http"
	"strconv"

	domainerrors "taponn/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var errInvalidID = domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_ID", "Invalid resource ID", "")

// pathID parses the named path parameter as a UUID.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errInvalidID.WithDetails(name + " must be a UUID")
	}

	return id, nil
}

// optionalFormID parses a form field as a UUID. An empty field yields uuid.Nil.
func optionalFormID(c echo.Context, name string) (uuid.UUID, error) {
	raw := c.FormValue(name)
	if raw == "" {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errInvalidID.WithDetails(name + " must be a UUID")
	}

	return id, nil
}

// page reads the limit and skip query parameters. Malformed values are passed
// as zero and left to the use case defaults.
func page(c echo.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	offset, _ = strconv.Atoi(c.QueryParam("skip"))

	return limit, offset
}
