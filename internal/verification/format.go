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
	"fmt"
	"strings"
)

// FormatResult готовит Markdown-сводку для веб-ленты и телеграма
func FormatResult(url string, result Result) string {
	var response strings.Builder

	band := BandFor(result.Score)
	response.WriteString(fmt.Sprintf("%s *%s*\n\n", band.Icon, result.Credibility))
	if url != "" {
		response.WriteString(fmt.Sprintf("*Source:* %s\n\n", url))
	}
	response.WriteString(fmt.Sprintf("*Confidence score:* %d%%\n\n", result.Score))
	response.WriteString(fmt.Sprintf("*Audio transcription:* %s\n\n", result.Transcription))
	response.WriteString(fmt.Sprintf("*Visual analysis:* %s\n\n", result.VisualAnalysis))

	if len(result.FactCheckResults) > 0 {
		response.WriteString("*Fact check results:*\n")
		for _, factCheck := range result.FactCheckResults {
			response.WriteString(fmt.Sprintf("- \"%s\"\n", factCheck.Claim))
			for _, entry := range factCheck.Results {
				publisher, rating := "Unknown", "No rating"
				if len(entry.ClaimReview) > 0 {
					if entry.ClaimReview[0].Publisher.Name != "" {
						publisher = entry.ClaimReview[0].Publisher.Name
					}
					if entry.ClaimReview[0].TextualRating != "" {
						rating = entry.ClaimReview[0].TextualRating
					}
				}
				response.WriteString(fmt.Sprintf("  - %s: %s\n", publisher, rating))
			}
		}
		response.WriteString("\n")
	}

	response.WriteString(fmt.Sprintf("*Conclusion:* %s\n", result.Conclusion))

	return response.String()
}
