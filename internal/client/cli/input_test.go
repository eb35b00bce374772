package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain line", "hola\n", "hola"},
		{"surrounding spaces trimmed", "  hola  \n", "hola"},
		{"partial line at EOF", "sin salto", "sin salto"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(bufio.NewReader(strings.NewReader(tt.input)), "prompt", &out)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "prompt")
		})
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(bufio.NewReader(strings.NewReader("")), "prompt", &out)
	assert.Error(t, err)
}

func TestGetRequiredText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("\n   \nAna\n"))

	got, err := GetRequiredText(reader, "nombre", &out)

	require.NoError(t, err)
	assert.Equal(t, "Ana", got)
	assert.Contains(t, out.String(), "Este campo es obligatorio.")
}

func TestGetInteger(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("abc\n3.14\n42\n"))

	got, err := GetInteger(reader, "edad", &out)

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Contains(t, out.String(), "Por favor ingrese un número válido.")
}

func TestGetOptionalInteger(t *testing.T) {
	t.Run("blank means absent", func(t *testing.T) {
		var out bytes.Buffer
		_, ok, err := GetOptionalInteger(bufio.NewReader(strings.NewReader("\n")), "edad", &out)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalid then valid", func(t *testing.T) {
		var out bytes.Buffer
		got, ok, err := GetOptionalInteger(bufio.NewReader(strings.NewReader("xx\n7\n")), "edad", &out)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 7, got)
	})
}
