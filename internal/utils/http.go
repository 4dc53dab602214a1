package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractPathParam retrieves a path parameter from the request context and
// strips a trailing ".json" extension, so "/stations/2025.json" yields "2025".
func ExtractPathParam(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	raw := params.ByName(paramName)
	return strings.Split(raw, ".json")[0]
}
