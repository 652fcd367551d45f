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

import ollama "github.com/ollama/ollama/api"

// Шкала достоверности
const (
	HighlyCredible    = "Highly Credible"
	MostlyCredible    = "Mostly Credible"
	MixedReliability  = "Mixed Reliability"
	MostlyUnreliable  = "Mostly Unreliable"
	HighlyUnreliable  = "Highly Unreliable"
	DefaultScore      = 65
	DefaultConclusion = "AI analysis completed. This is a simulation since actual video processing is not implemented."
	Disclaimer        = " \n\nNote: This is a simulation. Real implementation would process actual video content."
)

var CredibilityScale = []string{
	HighlyCredible,
	MostlyCredible,
	MixedReliability,
	MostlyUnreliable,
	HighlyUnreliable,
}

type Request struct {
	URL string `json:"url"`
}

type Publisher struct {
	Name string `json:"name"`
}

type ClaimReview struct {
	Publisher     Publisher `json:"publisher"`
	TextualRating string    `json:"textualRating"`
}

type FactCheckEntry struct {
	ClaimReview []ClaimReview `json:"claimReview"`
}

type FactCheck struct {
	Claim   string           `json:"claim"`
	Results []FactCheckEntry `json:"results"`
}

type Result struct {
	Credibility      string      `json:"credibility"`
	Score            int         `json:"score"`
	Transcription    string      `json:"transcription"`
	VisualAnalysis   string      `json:"visualAnalysis"`
	Conclusion       string      `json:"conclusion"`
	FactCheckResults []FactCheck `json:"factCheckResults"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type HealthReport struct {
	Status  string                      `json:"status"`
	Message string                      `json:"message"`
	Models  *[]ollama.ListModelResponse `json:"models,omitempty"`
	Error   string                      `json:"error,omitempty"`
}

// ModelList возвращает список моделей или nil, если его нет в отчете
func (report HealthReport) ModelList() []ollama.ListModelResponse {
	if report.Models == nil {
		return nil
	}
	return *report.Models
}
