package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/camden-git/starwarsapi/models"
	"github.com/camden-git/starwarsapi/repository"
)

type FavoriteHandler struct {
	Favorites repository.FavoriteRepository
	Log       *zap.Logger
}

func NewFavoriteHandler(favorites repository.FavoriteRepository, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{Favorites: favorites, Log: logger}
}

// favoriteRoute describes the per-kind wording and path parameter.
type favoriteRoute struct {
	kind     models.TargetKind
	param    string
	notFound string
}

var (
	planetFavorites = favoriteRoute{kind: models.TargetPlanet, param: ParamPlanetID, notFound: "user or planet not found"}
	personFavorites = favoriteRoute{kind: models.TargetPerson, param: ParamPeopleID, notFound: "user or person not found"}
)

// target resolves the user id and favorite target from the URL.
func (fr favoriteRoute) target(r *http.Request) (uint, models.FavoriteTarget, bool) {
	userID, ok := urlID(r, ParamUserID)
	if !ok {
		return 0, models.FavoriteTarget{}, false
	}
	id, ok := urlID(r, fr.param)
	if !ok {
		return 0, models.FavoriteTarget{}, false
	}
	return userID, models.FavoriteTarget{Kind: fr.kind, ID: id}, true
}

func (h *FavoriteHandler) AddFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	h.add(w, r, planetFavorites)
}

func (h *FavoriteHandler) AddFavoritePerson(w http.ResponseWriter, r *http.Request) {
	h.add(w, r, personFavorites)
}

func (h *FavoriteHandler) RemoveFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, planetFavorites)
}

func (h *FavoriteHandler) RemoveFavoritePerson(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, personFavorites)
}

func (h *FavoriteHandler) add(w http.ResponseWriter, r *http.Request, fr favoriteRoute) {
	userID, target, ok := fr.target(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, fr.notFound)
		return
	}

	fav, err := h.Favorites.Add(r.Context(), userID, target)
	switch StatusForError(err) {
	case http.StatusOK:
		h.Log.Debug("favorite added",
			zap.Uint("favorite_id", fav.ID),
			zap.Uint("user_id", userID),
			zap.Stringer("target", target),
		)
		writeMessage(w, http.StatusCreated, "favorite added")
	case http.StatusNotFound:
		writeMessage(w, http.StatusNotFound, fr.notFound)
	case http.StatusBadRequest:
		writeMessage(w, http.StatusBadRequest, "favorite already exists")
	default:
		writeInternalError(w, r, h.Log, "failed to add favorite", err)
	}
}

func (h *FavoriteHandler) remove(w http.ResponseWriter, r *http.Request, fr favoriteRoute) {
	userID, target, ok := fr.target(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "favorite not found")
		return
	}

	err := h.Favorites.Remove(r.Context(), userID, target)
	switch StatusForError(err) {
	case http.StatusOK:
		writeMessage(w, http.StatusOK, "favorite removed")
	case http.StatusNotFound:
		writeMessage(w, http.StatusNotFound, "favorite not found")
	default:
		writeInternalError(w, r, h.Log, "failed to remove favorite", err)
	}
}
