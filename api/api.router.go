package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/verdantiot/soilhub/api/resources"
	_ "github.com/verdantiot/soilhub/docs"
	"github.com/verdantiot/soilhub/internal/hubservice"
)

type Router struct {
	router    *mux.Router
	svc       *hubservice.HubService
	resources *resources.Resources
}

func NewRouter(svc *hubservice.HubService) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		svc:       svc,
		resources: resources.NewResources(svc),
	}

	r.setupRoutes()
	return r
}

// setupRoutes wires the route table. Registry routes exist only in the
// multi-sensor variant and the snapshot download only in the file-backed
// variant; a route that cannot be served is not registered at all.
func (r *Router) setupRoutes() {
	r.router.HandleFunc("/", r.resources.APIDocs).Methods(http.MethodGet)
	r.router.HandleFunc("/openapi.json", r.resources.OpenAPISpec).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.resources.HealthCheck).Methods(http.MethodGet)

	// Readings
	r.router.HandleFunc("/data", r.resources.Readings.IngestReading).Methods(http.MethodPost)
	r.router.HandleFunc("/latest", r.resources.Readings.LatestReading).Methods(http.MethodGet)
	r.router.HandleFunc("/all", r.resources.Readings.AllReadings).Methods(http.MethodGet)
	if r.svc.Snapshot != nil {
		r.router.HandleFunc("/download", r.resources.Readings.DownloadSnapshot).Methods(http.MethodGet)
	}

	// Sensor registry
	if r.svc.MultiSensor() {
		r.router.HandleFunc("/sensor/add", r.resources.Sensors.RegisterSensor).Methods(http.MethodPost)
		r.router.HandleFunc("/sensor/update/{sensor_id}", r.resources.Sensors.UpdateSensor).Methods(http.MethodPut)
		r.router.HandleFunc("/sensors", r.resources.Sensors.ListSensors).Methods(http.MethodGet)
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
