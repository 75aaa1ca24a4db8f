// Package currency formatea montos guardados en unidades menores (centavos).
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCents formatea centavos como USD con separador de miles: 4999 -> "$49.99".
// Trabaja en enteros para no introducir error de punto flotante.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return printer.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
