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

import "strings"

const (
	TEMPLATE_URL           = "{{URL}}"
	TEMPLATE_TRANSCRIPTION = "{{TRANSCRIPTION}}"
	TEMPLATE_VISUAL        = "{{VISUAL}}"
)

const DefaultPromptTemplate = `Analyze this social media content for credibility:

SOURCE: {{URL}}

CONTENT: {{TRANSCRIPTION}}

VISUALS: {{VISUAL}}

Please provide:
1. Credibility rating (Highly Credible, Mostly Credible, Mixed Reliability, Mostly Unreliable, Highly Unreliable)
2. Confidence score (0-100%)
3. Brief conclusion explaining your assessment

Format your response as JSON with these keys: credibility, score, conclusion`

func preparePrompt(template string, url string, transcription string, visual string) string {
	if strings.TrimSpace(template) == "" {
		template = DefaultPromptTemplate
	}

	prompt := strings.ReplaceAll(template, TEMPLATE_URL, url)
	prompt = strings.ReplaceAll(prompt, TEMPLATE_TRANSCRIPTION, transcription)
	prompt = strings.ReplaceAll(prompt, TEMPLATE_VISUAL, visual)

	return prompt
}
