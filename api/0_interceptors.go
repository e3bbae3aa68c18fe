package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/fulldump/box"

	"github.com/sortlab/sortlab/session"
)

func AccessLog(l *log.Logger) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			r := box.GetRequest(ctx)
			now := time.Now()
			defer func() {
				l.Println(now.UTC().Format(time.RFC3339Nano), formatRemoteAddr(r), r.Method, r.URL.String(), time.Since(now))
			}()

			next(ctx)
		}
	}
}

func formatRemoteAddr(r *http.Request) string {
	xorigin := strings.TrimSpace(strings.Split(
		r.Header.Get("X-Forwarded-For"), ",")[0])
	if xorigin != "" {
		return xorigin
	}

	return r.RemoteAddr[0:strings.LastIndex(r.RemoteAddr, ":")]
}

func RecoverFromPanic(next box.H) box.H {
	return func(ctx context.Context) {
		defer func() {
			if r := recover(); r != nil {
				debug.PrintStack()
				box.SetError(ctx, fmt.Errorf("internal error: %v", r))
			}
		}()
		next(ctx)
	}
}

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		if err == box.ErrResourceNotFound {
			writeError(w, http.StatusNotFound, err.Error(),
				fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String()))
			return
		}

		if err == box.ErrMethodNotAllowed {
			writeError(w, http.StatusMethodNotAllowed, err.Error(),
				fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method))
			return
		}

		if err == session.ErrorEmptyRegistry {
			writeError(w, http.StatusConflict, err.Error(),
				"register records before sorting or searching")
			return
		}

		if err == session.ErrorNotSortedByName {
			writeError(w, http.StatusConflict, err.Error(),
				"run POST /v1/records:sortByName before searching")
			return
		}

		switch err.(type) {
		case *json.SyntaxError, *json.UnmarshalTypeError:
			writeError(w, http.StatusBadRequest, err.Error(), "Malformed JSON")
			return
		}

		writeError(w, http.StatusInternalServerError, err.Error(), "Unexpected error")
	}
}

func writeError(w http.ResponseWriter, status int, message, description string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": PrettyError{
			Message:     message,
			Description: description,
		},
	})
}
