// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeapi

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes mounts the pipe endpoints on e.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.POST("/pipes/:name/items", h.Push)
	e.DELETE("/pipes/:name/items/head", h.Pop)
	e.GET("/pipes/:name", h.Status)
}

// NewServer returns an echo instance serving reg with request logging and
// panic recovery.
func NewServer(reg *Registry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	RegisterRoutes(e, NewHandler(reg))
	return e
}
