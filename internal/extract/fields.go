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

package extract

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Object - декодированный JSON-объект из ответа модели
type Object map[string]any

// FirstMap возвращает первый JSON-объект в тексте.
func FirstMap(text string) (Object, bool) {
	var obj Object
	if !FirstObject(text, &obj) || obj == nil {
		return nil, false
	}
	return obj, true
}

// String возвращает непустое строковое значение ключа.
// Пустая строка, null и значения других типов считаются отсутствующими.
func (o Object) String(key string) (string, bool) {
	value, ok := o[key].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Int возвращает ненулевое целое значение ключа. Дробные числа округляются,
// числовые строки разбираются. Ноль считается отсутствующим значением.
func (o Object) Int(key string) (int, bool) {
	var number float64

	switch value := o[key].(type) {
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return 0, false
		}
		number = f
	case float64:
		number = value
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "%")), 64)
		if err != nil {
			return 0, false
		}
		number = f
	default:
		return 0, false
	}

	number = math.Round(number)
	if math.IsNaN(number) || math.IsInf(number, 0) || number >= math.MaxInt || number < math.MinInt {
		return 0, false
	}

	rounded := int(number)
	if rounded == 0 {
		return 0, false
	}
	return rounded, true
}
