//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Round - round half away from zero to N places
func Round(val float64, places int) float64 {
	ratio := math.Pow(10, float64(places))
	return math.Round(val*ratio) / ratio
}

// Ratio - a/b, but 0 instead of NaN/Inf when b is 0
func Ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

// Commas - 123456 -> "123,456"
func Commas(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}
