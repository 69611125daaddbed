package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/camden-git/starwarsapi/repository"
)

type PersonHandler struct {
	People repository.PersonRepository
	Log    *zap.Logger
}

func NewPersonHandler(people repository.PersonRepository, logger *zap.Logger) *PersonHandler {
	return &PersonHandler{People: people, Log: logger}
}

func (ph *PersonHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := ph.People.ListAll(r.Context())
	if err != nil {
		writeInternalError(w, r, ph.Log, "failed to list people", err)
		return
	}
	if len(people) == 0 {
		writeMessage(w, http.StatusNotFound, "there are no people")
		return
	}

	results := make([]map[string]interface{}, 0, len(people))
	for _, p := range people {
		results = append(results, p.Serialize())
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

func (ph *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	personID, ok := urlID(r, ParamPeopleID)
	if !ok {
		writeMessage(w, http.StatusNotFound, "person does not exist")
		return
	}

	person, err := ph.People.GetByID(r.Context(), personID)
	if err != nil {
		if repository.IsNotFound(err) {
			writeMessage(w, http.StatusNotFound, "person does not exist")
		} else {
			writeInternalError(w, r, ph.Log, "failed to get person", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"result": person.Serialize()})
}
