package openglhelper

import (
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// keyNames maps the key names used in bindings to GLFW keys. Modifier names
// cover both the left and right key.
var keyNames = map[string][]glfw.Key{
	"left":   {glfw.KeyLeft},
	"right":  {glfw.KeyRight},
	"up":     {glfw.KeyUp},
	"down":   {glfw.KeyDown},
	"space":  {glfw.KeySpace},
	"shift":  {glfw.KeyLeftShift, glfw.KeyRightShift},
	"ctrl":   {glfw.KeyLeftControl, glfw.KeyRightControl},
	"alt":    {glfw.KeyLeftAlt, glfw.KeyRightAlt},
	"enter":  {glfw.KeyEnter},
	"escape": {glfw.KeyEscape},
	"tab":    {glfw.KeyTab},
}

// LookupKey resolves a binding key name. Single letters and digits are
// case-insensitive; unknown names resolve to nothing.
func LookupKey(name string) []glfw.Key {
	if keys, ok := keyNames[strings.ToLower(name)]; ok {
		return keys
	}
	if len(name) != 1 {
		return nil
	}
	c := strings.ToUpper(name)[0]
	switch {
	case c >= 'A' && c <= 'Z':
		return []glfw.Key{glfw.KeyA + glfw.Key(c-'A')}
	case c >= '0' && c <= '9':
		return []glfw.Key{glfw.Key0 + glfw.Key(c-'0')}
	}
	return nil
}
