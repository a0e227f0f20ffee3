// Package currency formata valores monetários em centavos inteiros para Real brasileiro.
//
// Toda a aritmética de preço da aplicação acontece em centavos inteiros; a
// formatação é o único ponto que conhece a convenção pt-BR (milhar com ponto,
// decimal com vírgula). Não há float em nenhum passo.
package currency

import "strconv"

// FormatBRL formata um valor em centavos como moeda brasileira.
//
//	1000    -> "R$ 10,00"
//	8091    -> "R$ 80,91"
//	4589000 -> "R$ 45.890,00"
//	-250    -> "-R$ 2,50"
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	reais := cents / 100
	centavos := cents % 100

	intPart := strconv.FormatInt(reais, 10)
	grouped := groupThousands(intPart)

	frac := strconv.FormatInt(centavos, 10)
	if centavos < 10 {
		frac = "0" + frac
	}

	return sign + "R$ " + grouped + "," + frac
}

// groupThousands insere pontos como separador de milhar: "45890" -> "45.890".
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	// primeiro grupo pode ter 1 a 3 dígitos; os demais sempre 3
	first := n % 3
	if first == 0 {
		first = 3
	}
	out := make([]byte, 0, n+(n-1)/3)
	out = append(out, s[:first]...)
	for i := first; i < n; i += 3 {
		out = append(out, '.')
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
