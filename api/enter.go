package api

import (
	"website/api/theme"
)

type AppGroup struct {
	ThemeApi theme.Theme
}

var AppGroupApp = new(AppGroup)
