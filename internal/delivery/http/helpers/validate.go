package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Validator is implemented by request DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate decodes the request body into dest and, if dest implements
// Validator, runs Validate(). On decode or validation failure it writes a 400
// {"message": ...} body and returns false. Callers should return immediately
// when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteMessage(w, http.StatusBadRequest, strings.Join(errs, "; "))
			return false
		}
	}
	return true
}
