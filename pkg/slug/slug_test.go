package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutallis/nutallis-api/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Castanha-do-Pará Torrada", "castanha-do-para-torrada"},
		{"Mix Funcional Energia", "mix-funcional-energia"},
		{"Amêndoas & Nozes (500g)", "amendoas-nozes-500g"},
		{"  Açaí   Premium  ", "acai-premium"},
		{"", ""},
		{"---", ""},
		{"Já formatado", "ja-formatado"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slug.Make(tc.in), "entrada: %q", tc.in)
	}
}
