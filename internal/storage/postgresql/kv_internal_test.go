package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "publication:", want: "publication:"},
		{in: "a_b", want: `a\_b`},
		{in: "100%", want: `100\%`},
		{in: `c:\dir`, want: `c:\\dir`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}
