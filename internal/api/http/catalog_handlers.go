package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studyarc/studyarc/internal/catalog"
)

// The catalog is static; handlers serve it straight from the package tables.

func QuestionsHandler(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, c.Questions())
	}
}

func IntakeQuestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.IntakeQuestions)
	}
}

func DimensionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.Dimensions)
	}
}

func ArchetypesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Declaration order, not map order.
		out := make([]catalog.Archetype, 0, len(catalog.ArchetypeIDs))
		for _, id := range catalog.ArchetypeIDs {
			out = append(out, catalog.Archetypes[id])
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func ArchetypeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "archetypeID")
		a, ok := catalog.Archetypes[id]
		if !ok {
			http.Error(w, "archetype not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}
