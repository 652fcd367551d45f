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

// Package extract достает структурированные данные из свободного текста,
// который вернула языковая модель.
package extract

import (
	"bytes"
	"encoding/json"
)

// Objects возвращает все сбалансированные фрагменты {...} в порядке
// открывающих скобок. Скобки внутри строковых литералов не учитываются,
// вложенные фрагменты отдельно не возвращаются.
func Objects(text string) []string {
	var spans []string

	for start := 0; start < len(text); start++ {
		if text[start] != '{' {
			continue
		}

		end := matchingBrace(text, start)
		if end < 0 {
			// Для этой скобки пары нет, но у следующих может быть
			continue
		}

		spans = append(spans, text[start:end+1])
		start = end
	}

	return spans
}

// matchingBrace возвращает индекс закрывающей скобки для text[start] == '{'
// или -1, если пары нет.
func matchingBrace(text string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// FirstObject декодирует в v первый фрагмент, являющийся JSON-объектом.
func FirstObject(text string, v any) bool {
	for _, span := range Objects(text) {
		decoder := json.NewDecoder(bytes.NewReader([]byte(span)))
		decoder.UseNumber()
		if err := decoder.Decode(v); err == nil {
			return true
		}
	}

	return false
}
