package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/camden-git/starwarsapi/repository"
)

type PlanetHandler struct {
	Planets repository.PlanetRepository
	Log     *zap.Logger
}

func NewPlanetHandler(planets repository.PlanetRepository, logger *zap.Logger) *PlanetHandler {
	return &PlanetHandler{Planets: planets, Log: logger}
}

func (h *PlanetHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.Planets.ListAll(r.Context())
	if err != nil {
		writeInternalError(w, r, h.Log, "failed to list planets", err)
		return
	}
	if len(planets) == 0 {
		writeMessage(w, http.StatusNotFound, "there are no planets")
		return
	}

	results := make([]map[string]interface{}, 0, len(planets))
	for _, p := range planets {
		results = append(results, p.Serialize())
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

func (h *PlanetHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	planetID, ok := urlID(r, ParamPlanetID)
	if !ok {
		writeMessage(w, http.StatusNotFound, "planet does not exist")
		return
	}

	planet, err := h.Planets.GetByID(r.Context(), planetID)
	if err != nil {
		if repository.IsNotFound(err) {
			writeMessage(w, http.StatusNotFound, "planet does not exist")
		} else {
			writeInternalError(w, r, h.Log, "failed to get planet", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"result": planet.Serialize()})
}
