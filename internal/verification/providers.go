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

	ollama "github.com/ollama/ollama/api"
)

const (
	StubTranscription  = "This is a simulated transcription. In a real implementation, we would download the video and use Whisper to transcribe the audio."
	StubVisualAnalysis = "This is a simulated visual analysis. In a real implementation, we would extract video frames and use LLaVA to analyze them."
)

// TranscriptionProvider превращает аудиодорожку видео по ссылке в текст
type TranscriptionProvider interface {
	Transcribe(ctx context.Context, url string) (string, error)
}

// VisualAnalysisProvider описывает происходящее в кадрах видео по ссылке
type VisualAnalysisProvider interface {
	AnalyzeFrames(ctx context.Context, url string) (string, error)
}

// Model - языковая модель, к которой обращается оркестратор
type Model interface {
	Query(ctx context.Context, prompt string) (string, error)
	ListModels(ctx context.Context) ([]ollama.ListModelResponse, error)
}

// Видео пока не скачивается, поэтому обе заглушки отвечают константами

type StubTranscriber struct{}

func (StubTranscriber) Transcribe(ctx context.Context, url string) (string, error) {
	return StubTranscription, nil
}

type StubVisualAnalyzer struct{}

func (StubVisualAnalyzer) AnalyzeFrames(ctx context.Context, url string) (string, error) {
	return StubVisualAnalysis, nil
}
