package httpserver

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/fdg312/caloric-api/internal/calories"
	"github.com/fdg312/caloric-api/internal/config"
	"github.com/fdg312/caloric-api/internal/projection"
)

// Server is the HTTP shell around the calculation engines.
type Server struct {
	config *config.Config
	mux    *http.ServeMux
}

// New creates a new HTTP server with all routes registered.
func New(cfg *config.Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}
	s.routes()
	return s
}

// routes registers the API routes.
func (s *Server) routes() {
	// Health check
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	// Calories API
	caloriesService := calories.NewService()
	caloriesHandler := calories.NewHandler(caloriesService)

	// POST /v1/predict - BMR and daily caloric needs
	s.mux.HandleFunc("POST /v1/predict", caloriesHandler.HandlePredict)

	// Projection API
	projectionService := projection.NewService(projection.DefaultSource())
	projectionHandler := projection.NewHandler(projectionService)

	// POST /v1/predict-time-series - 12-week weight projection
	s.mux.HandleFunc("POST /v1/predict-time-series", projectionHandler.HandlePredictTimeSeries)
}

// handleHealthz returns the server status.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// Handler returns the full middleware chain (outermost first):
// CORS -> Rate Limit -> Request Log -> Router.
func (s *Server) Handler() http.Handler {
	var handler http.Handler = s.mux
	handler = RequestLogMiddleware(handler)
	handler = RateLimitMiddleware(s.config, handler)
	handler = CORSMiddleware(s.config, handler)
	return handler
}

// Start runs the HTTP server and blocks.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	log.Printf("Server listening on http://localhost%s\n", addr)
	log.Printf("Health check: http://localhost%s/healthz\n", addr)
	log.Printf("Predict API: http://localhost%s/v1/predict\n", addr)

	return http.ListenAndServe(addr, s.Handler())
}
