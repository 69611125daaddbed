package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Route parameter names, shared with the router.
const (
	ParamUserID   = "user_id"
	ParamPeopleID = "people_id"
	ParamPlanetID = "planet_id"
)

// urlID reads a numeric path segment. Routes constrain the segment to
// digits, so the only failure left is overflow.
func urlID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
