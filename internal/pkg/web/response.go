package web

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
)

// Respond writes msg as a JSON-encoded string with the provided HTTP status code.
//
// Example usage:
//
//	Respond(w, http.StatusOK, "Protected route!")
//
// The JSON response has the form:
//
//	"Protected route!"
func Respond(w http.ResponseWriter, status int, msg string) {
	w.Header().Set(HeaderContentType, MimeJSON)
	response.JSON(w, status, msg)
}

// Fail writes msg as a JSON-encoded string with the provided HTTP status code.
//
// The reason is logged using slog at Error level with the key "reason" and is
// never sent to the client.
func Fail(w http.ResponseWriter, status int, reason error, msg string) {
	slog.Error("request failed", "reason", reason, "status", status)
	Respond(w, status, msg)
}

func RespondBadRequest(w http.ResponseWriter, reason error, msg string) {
	Fail(w, http.StatusBadRequest, reason, msg)
}

func RespondUnauthorized(w http.ResponseWriter, reason error, msg string) {
	Fail(w, http.StatusUnauthorized, reason, msg)
}

func RespondForbidden(w http.ResponseWriter, reason error, msg string) {
	Fail(w, http.StatusForbidden, reason, msg)
}

func RespondNotFound(w http.ResponseWriter, reason error, msg string) {
	Fail(w, http.StatusNotFound, reason, msg)
}

func RespondConflict(w http.ResponseWriter, reason error, msg string) {
	Fail(w, http.StatusConflict, reason, msg)
}

func RespondRequestEntityTooLarge(w http.ResponseWriter, reason error, msg string) {
	Fail(w, http.StatusRequestEntityTooLarge, reason, msg)
}

func RespondUnprocessableEntity(w http.ResponseWriter, reason error, msg string) {
	Fail(w, http.StatusUnprocessableEntity, reason, msg)
}

func RespondInternalServerError(w http.ResponseWriter, reason error) {
	Fail(w, http.StatusInternalServerError, reason, http.StatusText(http.StatusInternalServerError))
}

func RespondUnsupportedMediaType(w http.ResponseWriter, reason error, msg string) {
	Fail(w, http.StatusUnsupportedMediaType, reason, msg)
}

func RespondRequestTimeout(w http.ResponseWriter, reason error, msg string) {
	Fail(w, http.StatusRequestTimeout, reason, msg)
}
