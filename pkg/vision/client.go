// Package vision превращает фото вещи в текстовое описание.
//
// Исходный сценарий StyleMatch: пользователь загружает фото, vision
// модель описывает вещь (цвет, тип, фасон), описание уходит в
// лексический матчинг как обычный текст запроса. Само сравнение
// остаётся лексическим — embeddings здесь не используются.
//
// Работает с любым OpenAI-совместимым API (custom BaseURL).
package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/ilkoid/stylematch/pkg/config"
	"github.com/ilkoid/stylematch/pkg/utils"
)

// describePrompt просит модель описать вещь в терминах, которые
// понимает скоринг: цвета и типы одежды из словаря, прилагательные.
const describePrompt = "Describe the clothing item in this photo in one short " +
	"paragraph: garment type (shirt, dress, jacket, jeans...), main colours " +
	"and notable adjectives (fitted, oversized, striped...). Plain text, no lists."

// Client — vision клиент для описания изображений.
type Client struct {
	api      *openai.Client
	model    string
	maxTok   int
	limiter  *rate.Limiter
	maxWidth int
	quality  int
}

// New создает vision клиент на основе конфигурации модели.
//
// Все настройки из конфигурации, никакого хардкода. Rate limiter
// (запросов в минуту + burst) защищает от банов на публичных API.
func New(modelDef config.ModelDef, imgCfg config.ImageProcConfig) *Client {
	// Поддержка custom BaseURL для non-OpenAI провайдеров
	cfg := openai.DefaultConfig(modelDef.APIKey)
	if modelDef.BaseURL != "" {
		cfg.BaseURL = modelDef.BaseURL
	}

	rpm := modelDef.RateLimit
	if rpm == 0 {
		rpm = 30
	}
	burst := modelDef.Burst
	if burst == 0 {
		burst = 1
	}

	maxWidth := imgCfg.MaxWidth
	if maxWidth == 0 {
		maxWidth = 1024
	}
	quality := imgCfg.Quality
	if quality == 0 {
		quality = 85
	}

	return &Client{
		api:      openai.NewClientWithConfig(cfg),
		model:    modelDef.ModelName,
		maxTok:   modelDef.MaxTokens,
		limiter:  rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst),
		maxWidth: maxWidth,
		quality:  quality,
	}
}

// Describe возвращает текстовое описание вещи на фото.
//
// Алгоритм:
//  1. Ждём rate limiter (отменяемо через ctx)
//  2. Ресайзим изображение и кодируем в base64 data-uri
//  3. Vision запрос с MultiContent (текст + картинка)
func (c *Client) Describe(ctx context.Context, imageData []byte) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}

	resized, err := utils.ResizeImage(imageData, c.maxWidth, c.quality)
	if err != nil {
		return "", fmt.Errorf("image preprocessing failed: %w", err)
	}

	dataURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(resized)

	startTime := time.Now()
	utils.Debug("Vision request started", "model", c.model, "image_bytes", len(resized))

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: describePrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURI,
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
	}
	if c.maxTok > 0 {
		req.MaxTokens = c.maxTok
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("vision response has no choices")
	}

	utils.Info("Vision response received",
		"model", c.model,
		"content_length", len(resp.Choices[0].Message.Content),
		"duration_ms", time.Since(startTime).Milliseconds())

	return resp.Choices[0].Message.Content, nil
}
