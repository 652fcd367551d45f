/*
   TruthVerifier - social media content credibility verifier
   Copyright (C) 2025  Unbewohnte (Kasyanov Nikolay Alexeevich)

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package inference

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	ollama "github.com/ollama/ollama/api"
)

var thinkBlock = regexp.MustCompile(`(?s)<think>.*?</think>`)

type Client struct {
	ModelName      string
	Client         *ollama.Client
	TimeoutSeconds uint
}

// NewClient создает клиента Ollama. Пустой host означает OLLAMA_HOST
// из окружения (или адрес по умолчанию).
func NewClient(host string, ollamaModel string, timeoutSeconds uint) (*Client, error) {
	inference := &Client{
		ModelName:      ollamaModel,
		TimeoutSeconds: timeoutSeconds,
	}

	if host == "" {
		client, err := ollama.ClientFromEnvironment()
		if err != nil {
			return nil, err
		}
		inference.Client = client
		return inference, nil
	}

	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("некорректный адрес Ollama %q: %w", host, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("некорректный адрес Ollama %q", host)
	}
	inference.Client = ollama.NewClient(base, http.DefaultClient)

	return inference, nil
}

// withTimeout ограничивает запрос, если задан таймаут. 0 - без ограничений.
func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.TimeoutSeconds == 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(c.TimeoutSeconds)*time.Second)
}

func (c *Client) ListModels(ctx context.Context) ([]ollama.ListModelResponse, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	response, err := c.Client.List(ctx)
	if err != nil {
		return nil, err
	}

	return response.Models, nil
}

// Query отправляет один нестриминговый запрос генерации и возвращает
// полный ответ модели.
func (c *Client) Query(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	stream := false
	var response strings.Builder
	err := c.Client.Generate(ctx, &ollama.GenerateRequest{
		Model:  c.ModelName,
		Prompt: prompt,
		Stream: &stream,
	}, func(res ollama.GenerateResponse) error {
		response.WriteString(res.Response)
		return nil
	})
	if err != nil {
		return "", err
	}

	return removeThinkBlock(response.String()), nil
}

// Рассуждающие модели оборачивают размышления в <think>, в них бывают скобки
func removeThinkBlock(input string) string {
	if !strings.Contains(input, "<think>") {
		return input
	}
	return strings.TrimSpace(thinkBlock.ReplaceAllString(input, ""))
}
