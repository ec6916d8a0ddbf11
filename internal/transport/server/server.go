package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/pep299/wiki-stub-finder/internal/application"
	"github.com/pep299/wiki-stub-finder/internal/transport/middleware"
	"github.com/pep299/wiki-stub-finder/internal/transport/response"
)

// New assembles the main HTTP handler for the application.
func New(app *application.Application) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.CORS(app.Config.CORSOrigins))
	api.Use(middleware.Logging(app.Logger))

	api.HandleFunc("/health", healthHandler).Methods("GET")

	api.Handle("/search", app.SearchHandler).Methods("POST", "OPTIONS")
	api.HandleFunc("/categories/{title}", app.ArticleHandler.Categories).Methods("GET")
	api.HandleFunc("/article/{title}", app.ArticleHandler.Details).Methods("GET")
	api.HandleFunc("/stub-categories", app.ArticleHandler.StubCategories).Methods("GET")
	api.Handle("/relevant-stubs", app.StubsHandler).Methods("POST", "OPTIONS")
	api.Handle("/summary", app.SummaryHandler).Methods("POST", "OPTIONS")
	api.Handle("/process-file", app.FileHandler).Methods("POST", "OPTIONS")

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
		"version":   "v1.0.0",
	})
}
