package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rubytopaz-glitch/universe/internal/domain"
	"github.com/rubytopaz-glitch/universe/internal/ports"
)

// maxHistoryTurns bounds how much conversation history reaches the model.
const maxHistoryTurns = 10

// RecommendRequest is the application-level input (no HTTP types).
type RecommendRequest struct {
	Message string
	History []ports.ChatMessage
}

// RecommendResult is the application-level output.
type RecommendResult struct {
	Answer    string
	Filter    domain.Filter
	Movies    []domain.Movie
	Reasons   map[string]string
	LatencyMS int64
}

// RecommendService orchestrates the recommendation flow: interpret the
// message, reconcile with rule-extracted exclusions, run the fallback
// cascade against the catalog, and optionally annotate results with
// per-movie reasons.
type RecommendService struct {
	catalog     ports.Catalog
	interpreter ports.Completer
	annotator   ports.Completer
	audit       ports.AuditLog
	logger      *slog.Logger
}

func NewRecommendService(catalog ports.Catalog, interpreter, annotator ports.Completer, audit ports.AuditLog, logger *slog.Logger) *RecommendService {
	return &RecommendService{
		catalog:     catalog,
		interpreter: interpreter,
		annotator:   annotator,
		audit:       audit,
		logger:      logger,
	}
}

func (s *RecommendService) Recommend(ctx context.Context, req RecommendRequest) (RecommendResult, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return RecommendResult{}, domain.ErrEmptyMessage
	}

	start := time.Now()

	interp, raw := s.interpret(ctx, message, req.History)

	s.audit.Record(ctx, ports.AuditEntry{
		Prompt:      message,
		ResponseRaw: raw,
		Answer:      interp.Answer,
		Filter:      interp.Filter,
		CreatedAt:   time.Now().UTC(),
	})

	// Exclusions the user spelled out override whatever the model produced.
	msgExcludeGenres, msgExcludeTitles := domain.ParseExclusions(message)
	filter := domain.Reconcile(interp.Filter, msgExcludeGenres, msgExcludeTitles)

	catalog, err := s.catalog.Movies(ctx)
	if err != nil {
		return RecommendResult{}, fmt.Errorf("load catalog: %w", err)
	}

	movies := domain.PlanQuery(catalog, filter)

	reasons := map[string]string{}
	if len(movies) > 0 && s.annotator != nil {
		reasons = s.annotate(ctx, message, movies)
	}

	return RecommendResult{
		Answer:    interp.Answer,
		Filter:    filter,
		Movies:    movies,
		Reasons:   reasons,
		LatencyMS: time.Since(start).Milliseconds(),
	}, nil
}

// interpret calls the completion service and normalizes its output. Any
// transport or parse failure degrades to the deterministic fallback filter;
// it never fails the request.
func (s *RecommendService) interpret(ctx context.Context, message string, history []ports.ChatMessage) (domain.Interpretation, string) {
	msgs := make([]ports.ChatMessage, 0, 2+maxHistoryTurns)
	msgs = append(msgs, ports.ChatMessage{Role: "system", Content: filterSystemPrompt})
	msgs = append(msgs, trimHistory(history)...)
	msgs = append(msgs, ports.ChatMessage{Role: "user", Content: message})

	raw, err := s.interpreter.Complete(ctx, msgs)
	if err != nil {
		s.logger.WarnContext(ctx, "interpreter call failed, using fallback filter", "error", err)
		return domain.FallbackInterpretation(message), ""
	}

	parsed, ok := domain.ExtractJSONObject(raw)
	if !ok {
		s.logger.WarnContext(ctx, "interpreter returned no parseable JSON, using fallback filter")
		return domain.FallbackInterpretation(message), raw
	}

	return domain.NormalizeInterpretation(parsed, message), raw
}

// reasonMovie is the movie shape sent to the annotator prompt.
type reasonMovie struct {
	TMDBID      int64    `json:"tmdb_id"`
	Title       string   `json:"title"`
	Genres      []string `json:"genres,omitempty"`
	VoteAverage float64  `json:"vote_average,omitempty"`
	Overview    string   `json:"overview,omitempty"`
}

// annotate asks the completion service for a per-movie justification and
// validates the mapping against the actual result set. Every failure path
// returns an empty map; reasons are strictly optional.
func (s *RecommendService) annotate(ctx context.Context, userRequest string, movies []domain.Movie) map[string]string {
	list := make([]reasonMovie, len(movies))
	for i, m := range movies {
		list[i] = reasonMovie{
			TMDBID:      m.TMDBID,
			Title:       m.Title,
			Genres:      m.Genres,
			VoteAverage: m.VoteAverage,
			Overview:    m.Overview,
		}
	}

	payload, err := json.Marshal(map[string]any{
		"user_request": userRequest,
		"movies":       list,
	})
	if err != nil {
		return map[string]string{}
	}

	raw, err := s.annotator.Complete(ctx, []ports.ChatMessage{
		{Role: "system", Content: reasonSystemPrompt},
		{Role: "user", Content: string(payload)},
	})
	if err != nil {
		s.logger.WarnContext(ctx, "annotator call failed, skipping reasons", "error", err)
		return map[string]string{}
	}

	parsed, ok := domain.ExtractJSONObject(raw)
	if !ok {
		return map[string]string{}
	}
	return domain.NormalizeReasons(parsed, movies)
}

// trimHistory keeps the last maxHistoryTurns entries whose role is "user"
// or "assistant".
func trimHistory(history []ports.ChatMessage) []ports.ChatMessage {
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	out := make([]ports.ChatMessage, 0, len(history))
	for _, m := range history {
		if m.Role == "user" || m.Role == "assistant" {
			out = append(out, m)
		}
	}
	return out
}
