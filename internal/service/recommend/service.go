package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sportmaps/internal/lib/sl"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ErrNotConfigured is returned when no OpenAI credentials are set.
var ErrNotConfigured = errors.New("recommendation service not configured")

// UserProfile describes the person recommendations are generated for.
type UserProfile struct {
	Name                string `json:"name" validate:"required"`
	Level               string `json:"level"`
	CompletedActivities int    `json:"completed_activities"`
	Points              int    `json:"points"`
}

// Recommendation is one suggested school, sport or wellness service.
type Recommendation struct {
	Title    string   `json:"title"`
	Type     string   `json:"type"`
	Reason   string   `json:"reason"`
	Benefits []string `json:"benefits"`
}

const systemPrompt = `Eres un asistente experto en deportes y bienestar que genera recomendaciones personalizadas para usuarios de SportMaps.
Tu objetivo es sugerir escuelas deportivas, deportes nuevos y servicios de bienestar basados en el perfil del usuario.
Genera exactamente 3 recomendaciones variadas y personalizadas.
Responde ÚNICAMENTE con un objeto JSON válido con un array "recommendations" de 3 objetos, cada uno con: title, type, reason, benefits (array de strings).`

// Service generates activity recommendations through the OpenAI chat
// completion API.
type Service struct {
	client *openai.Client
	model  string
	log    *slog.Logger
}

func NewService(apiKey, model string, logger *slog.Logger) *Service {
	return &Service{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    logger.With(sl.Module("recommend-service")),
	}
}

// Recommend asks the model for three structured recommendations for
// the given profile.
func (s *Service) Recommend(ctx context.Context, profile UserProfile) ([]Recommendation, error) {
	userPrompt := fmt.Sprintf(
		"Genera recomendaciones deportivas y de bienestar para:\nNombre: %s\nNivel: %s\nActividades completadas: %d\nPuntos: %d",
		profile.Name, profile.Level, profile.CompletedActivities, profile.Points,
	)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices returned")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)

	var parsed struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	if err = json.Unmarshal([]byte(content), &parsed); err != nil {
		s.log.With(
			slog.String("content", content),
			sl.Err(err),
		).Error("unmarshalling recommendations")
		return nil, fmt.Errorf("parse recommendations: %w", err)
	}

	return parsed.Recommendations, nil
}
