package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
	"github.com/riskibarqy/big5-league-stats/internal/platform/logging"
	"github.com/riskibarqy/big5-league-stats/internal/usecase"
)

type Handler struct {
	stats     *usecase.SeasonStatsService
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(stats *usecase.SeasonStatsService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		stats:     stats,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func seasonIDFromPath(r *http.Request) (season.SeasonID, error) {
	id, err := season.ParseSeasonID(r.PathValue("seasonID"))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return id, nil
}

// teamsFromQuery accepts repeated ?team= values as well as comma-separated ones.
func teamsFromQuery(r *http.Request) []string {
	var out []string
	for _, raw := range r.URL.Query()["team"] {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}
