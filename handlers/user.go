package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/camden-git/starwarsapi/models"
	"github.com/camden-git/starwarsapi/repository"
)

type UserHandler struct {
	Users     repository.UserRepository
	Favorites repository.FavoriteRepository
	Log       *zap.Logger
}

func NewUserHandler(users repository.UserRepository, favorites repository.FavoriteRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{Users: users, Favorites: favorites, Log: logger}
}

// ListUsers serves GET /user.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.ListAll(r.Context())
	if err != nil {
		writeInternalError(w, r, h.Log, "failed to list users", err)
		return
	}
	if len(users) == 0 {
		writeMessage(w, http.StatusNotFound, "there are no users")
		return
	}

	results := make([]map[string]interface{}, 0, len(users))
	for _, u := range users {
		results = append(results, u.Serialize())
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

// ListFavorites serves GET /user/{user_id}/favorites. A user without
// favorites and an unknown user both answer 404.
func (h *UserHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlID(r, ParamUserID)
	if !ok {
		writeMessage(w, http.StatusNotFound, "user has no favorites")
		return
	}

	favorites, err := h.Favorites.ListByUser(r.Context(), userID)
	if err != nil {
		writeInternalError(w, r, h.Log, "failed to list favorites", err)
		return
	}
	if len(favorites) == 0 {
		writeMessage(w, http.StatusNotFound, "user has no favorites")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"results": models.SerializeFavorites(favorites)})
}
