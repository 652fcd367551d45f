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

type Band struct {
	Color string
	Icon  string
}

// BandFor повторяет раскраску веб-страницы: >=80 зеленый, >=60 синий,
// >=40 янтарный, иначе красный.
func BandFor(score int) Band {
	switch {
	case score >= 80:
		return Band{Color: "green", Icon: "✅"}
	case score >= 60:
		return Band{Color: "blue", Icon: "⚠️"}
	case score >= 40:
		return Band{Color: "amber", Icon: "❌"}
	default:
		return Band{Color: "red", Icon: "❌"}
	}
}
