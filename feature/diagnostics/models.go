package diagnostics

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse documents the body written by the host error handler.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// healthy is returned by every health probe.
var healthy = HealthResponse{
	Status:  "ok",
	Message: "Prisma is connected to PostgreSQL",
}
