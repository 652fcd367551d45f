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

package verification

import (
	"context"
	"fmt"
	"log"
	"net/http"

	ollama "github.com/ollama/ollama/api"
)

const NoResponse = "No response from model"

type Orchestrator struct {
	model          Model
	ModelName      string
	Transcriber    TranscriptionProvider
	VisualAnalyzer VisualAnalysisProvider
	PromptTemplate string
	Debug          bool
}

func NewOrchestrator(model Model, modelName string, promptTemplate string) *Orchestrator {
	return &Orchestrator{
		model:          model,
		ModelName:      modelName,
		Transcriber:    StubTranscriber{},
		VisualAnalyzer: StubVisualAnalyzer{},
		PromptTemplate: promptTemplate,
	}
}

// Verify всегда возвращает полностью заполненный результат: недоступность
// модели и мусор в ее ответе превращаются в значения по умолчанию.
func (o *Orchestrator) Verify(ctx context.Context, request Request) Result {
	transcription, err := o.Transcriber.Transcribe(ctx, request.URL)
	if err != nil {
		log.Printf("Ошибка транскрибации %s: %v", request.URL, err)
		transcription = fmt.Sprintf("Error: could not transcribe audio: %v", err)
	}

	visualAnalysis, err := o.VisualAnalyzer.AnalyzeFrames(ctx, request.URL)
	if err != nil {
		log.Printf("Ошибка анализа кадров %s: %v", request.URL, err)
		visualAnalysis = fmt.Sprintf("Error: could not analyze frames: %v", err)
	}

	prompt := preparePrompt(o.PromptTemplate, request.URL, transcription, visualAnalysis)
	if o.Debug {
		log.Printf("Подготовленный промпт: %s", prompt)
	}

	reply := o.query(ctx, prompt)
	if o.Debug {
		log.Printf("Ответ модели: %s", reply)
	}

	verdict := ParseVerdict(reply)
	if !verdict.Parsed {
		log.Printf("Не удалось найти JSON в ответе модели для %s", request.URL)
	}

	return Result{
		Credibility:      verdict.Credibility,
		Score:            verdict.Score,
		Transcription:    transcription,
		VisualAnalysis:   visualAnalysis,
		Conclusion:       verdict.Conclusion + Disclaimer,
		FactCheckResults: []FactCheck{},
	}
}

// query никогда не возвращает ошибку: она становится ответом модели
func (o *Orchestrator) query(ctx context.Context, prompt string) string {
	reply, err := o.model.Query(ctx, prompt)
	if err != nil {
		log.Printf("Ошибка запроса к %s: %v", o.ModelName, err)
		return fmt.Sprintf("Error: Could not get response from %s", o.ModelName)
	}

	if reply == "" {
		return NoResponse
	}

	return reply
}

// CheckInferenceServer проверяет доступность сервера инференса и
// возвращает отчет вместе с HTTP-статусом для ответа клиенту.
func (o *Orchestrator) CheckInferenceServer(ctx context.Context) (HealthReport, int) {
	models, err := o.model.ListModels(ctx)
	if err != nil {
		log.Printf("Ollama недоступна: %v", err)
		return HealthReport{
			Status:  StatusError,
			Message: "Cannot connect to Ollama",
			Error:   err.Error(),
		}, http.StatusInternalServerError
	}

	// Пустой список тоже отдается клиенту
	if models == nil {
		models = []ollama.ListModelResponse{}
	}

	return HealthReport{
		Status:  StatusSuccess,
		Message: "Ollama is running!",
		Models:  &models,
	}, http.StatusOK
}
