package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/promptgen-api/internal/api/shared"
	"github.com/phrazzld/promptgen-api/internal/domain"
	"github.com/phrazzld/promptgen-api/internal/platform/logger"
	"github.com/phrazzld/promptgen-api/internal/service"
	"github.com/phrazzld/promptgen-api/internal/version"
)

// PromptHandler handles prompt-generation HTTP requests.
// The promptService may be nil when the generator failed to initialize at
// startup (missing credential); in that state every generation request and
// the health endpoint report a server error, but the service stays up.
type PromptHandler struct {
	promptService service.PromptService
	logger        *slog.Logger
}

// NewPromptHandler creates a new PromptHandler.
func NewPromptHandler(promptService service.PromptService, logger *slog.Logger) *PromptHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PromptHandler{
		promptService: promptService,
		logger:        logger,
	}
}

// GeneratePrompt handles POST /generate-prompt requests.
func (h *PromptHandler) GeneratePrompt(w http.ResponseWriter, r *http.Request) {
	if h.promptService == nil {
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, GeneratePromptResponse{
			Success: false,
			Error:   "Prompt generator not initialized. Check your API key.",
		})
		return
	}

	var req GeneratePromptRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, GeneratePromptResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	// The required-field check happens here, before the prompt service or
	// any provider call is reached.
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, GeneratePromptResponse{
			Success: false,
			Error:   "Missing required field: user_input",
		})
		return
	}

	result := h.promptService.GeneratePrompt(r.Context(), domain.NewGenerationRequest(
		req.UserInput,
		req.Context,
		req.PromptType,
		req.CustomInstructions,
	))

	status := http.StatusOK
	if !result.Success {
		// The trace middleware stores a request-scoped logger that already
		// carries the trace ID.
		log := logger.FromContextOrDefault(r.Context(), h.logger)
		log.Error("Prompt generation failed", "error", result.ErrorMessage)
		status = http.StatusInternalServerError
	}

	shared.RespondWithJSON(w, r, status, resultToResponse(result))
}

// Health handles GET /health requests.
func (h *PromptHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.promptService == nil {
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, HealthResponse{
			Status:  "error",
			Service: version.ServiceName,
			Version: version.Version,
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: version.ServiceName,
		Version: version.Version,
	})
}

// PromptTypes handles GET /prompt-types requests.
func (h *PromptHandler) PromptTypes(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, PromptTypesResponse{
		PromptTypes: domain.PromptTypeDescriptors(),
	})
}

// NotFound is the JSON handler for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, "Endpoint not found")
}

// MethodNotAllowed is the JSON handler for known routes with wrong methods.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
}
