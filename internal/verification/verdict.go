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

import "Unbewohnte/TruthVerifier/internal/extract"

type Verdict struct {
	Credibility string
	Score       int
	Conclusion  string
	// Parsed - удалось ли найти в ответе JSON-объект
	Parsed bool
}

// ParseVerdict извлекает оценку из ответа модели. Если объекта нет,
// остаются значения по умолчанию, а заключением становится весь ответ.
// Пустые и нулевые поля заменяются значениями по умолчанию, поэтому
// законный score 0 неотличим от отсутствующего. Значения не проверяются
// на принадлежность шкале и диапазону 0-100.
func ParseVerdict(reply string) Verdict {
	verdict := Verdict{
		Credibility: MixedReliability,
		Score:       DefaultScore,
		Conclusion:  reply,
	}

	obj, ok := extract.FirstMap(reply)
	if !ok {
		return verdict
	}

	verdict.Parsed = true
	verdict.Conclusion = DefaultConclusion

	if credibility, ok := obj.String("credibility"); ok {
		verdict.Credibility = credibility
	}
	if score, ok := obj.Int("score"); ok {
		verdict.Score = score
	}
	if conclusion, ok := obj.String("conclusion"); ok {
		verdict.Conclusion = conclusion
	}

	return verdict
}
