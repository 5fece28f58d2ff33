package equipment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeSerial(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		expect string
	}{
		{"alfanumerico pasa igual", "SN001", "SN001"},
		{"quita simbolos y espacios", "SN-001 / B", "SN001B"},
		{"solo simbolos cae al fallback", "---///---", "equipo"},
		{"vacio cae al fallback", "", "equipo"},
		{"acentos y eñes se descartan", "AÑO-2026", "AO2026"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, sanitizeSerial(tc.in))
		})
	}
}

func TestSanitizeSerial_TruncaA50(t *testing.T) {
	long := strings.Repeat("A", 120)
	got := sanitizeSerial(long)
	assert.Len(t, got, 50)
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".png", extensionFor("image/png"))
	assert.Equal(t, ".webp", extensionFor("image/webp"))
	assert.Equal(t, ".gif", extensionFor("image/gif"))
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".jpg", extensionFor("image/desconocido"))
}

// La key queda espaciada por inventario y dos subidas del mismo serial nunca
// colisionan (timestamp + sufijo aleatorio).
func TestObjectKey(t *testing.T) {
	k1, err := objectKey("inv-001", "SN-001", "image/png")
	require.NoError(t, err)
	k2, err := objectKey("inv-001", "SN-001", "image/png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(k1, "inventarios/inv-001/equipos/SN001_"), "key: %s", k1)
	assert.True(t, strings.HasSuffix(k1, ".png"))
	assert.NotEqual(t, k1, k2)
}
