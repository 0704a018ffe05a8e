package blob

import (
	"crypto/sha256"
	"encoding/hex"
	"path"
	"strings"
)

// SanitizePath normaliza un path lógico a relativo.
// Si después de normalizar sigue habiendo "..", el input entero se hashea
// dentro del bucket "unsafe/" en vez de intentar arreglarlo.
func SanitizePath(p string) string {
	normalized := strings.TrimPrefix(path.Clean("/"+p), "/")
	if strings.Contains(normalized, "..") {
		sum := sha256.Sum256([]byte(p))
		return "unsafe/" + hex.EncodeToString(sum[:])
	}
	return normalized
}

// LocalURL arma la URL local de un path ya saneado.
func LocalURL(rel string) string {
	return LocalURLPrefix + rel
}

// RelFromLocalURL es la inversa de LocalURL. ok=false si no es una URL local.
func RelFromLocalURL(url string) (string, bool) {
	if !strings.HasPrefix(url, LocalURLPrefix) {
		return "", false
	}
	return SanitizePath(strings.TrimPrefix(url, LocalURLPrefix)), true
}
