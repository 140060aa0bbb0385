// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pipeapi exposes named pipes over HTTP.
package pipeapi

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/pipe"
	"github.com/labstack/echo/v4"
)

// PushRequest is the JSON body accepted by Push.
type PushRequest struct {
	Item string `json:"item"`
}

// PipeStatus is the JSON body returned by Status.
type PipeStatus struct {
	Name      string `json:"name"`
	Len       int    `json:"len"`
	Waiting   int    `json:"waiting"`
	BlockSize int    `json:"block_size"`
	Allocated uint64 `json:"allocated"`
	Reused    uint64 `json:"reused"`
	Retired   uint64 `json:"retired"`
	Spare     bool   `json:"spare"`
}

// Handler serves push, pop and status requests against a Registry.
type Handler struct {
	Registry *Registry
}

// NewHandler creates a handler over reg.
func NewHandler(reg *Registry) *Handler {
	return &Handler{Registry: reg}
}

// Push appends the request body (octet-stream) or the JSON item field to
// the named pipe.
func (h *Handler) Push(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return c.String(http.StatusBadRequest, "invalid pipe name")
	}

	var item []byte
	switch c.Request().Header.Get(echo.HeaderContentType) {
	case echo.MIMEOctetStream:
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return c.String(http.StatusBadRequest, "invalid request body")
		}
		item = body
	default:
		var req PushRequest
		if err := c.Bind(&req); err != nil {
			return c.String(http.StatusBadRequest, "invalid request body")
		}
		item = []byte(req.Item)
	}
	if len(item) == 0 {
		return c.String(http.StatusBadRequest, "item is required")
	}

	h.Registry.GetOrCreate(name).Push(item)
	c.Logger().Debugf("pushed to pipe %q (%d bytes)", name, len(item))
	return c.NoContent(http.StatusAccepted)
}

// Pop removes the oldest item of the named pipe.
//
// Without ?wait=true an empty pipe answers 204 at once. With it the
// request waits for an item until the client goes away.
func (h *Handler) Pop(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return c.String(http.StatusBadRequest, "invalid pipe name")
	}
	wait := false
	if v := c.QueryParam("wait"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.String(http.StatusBadRequest, "invalid wait parameter")
		}
		wait = b
	}

	p := h.Registry.GetOrCreate(name)
	var (
		item []byte
		err  error
	)
	if wait {
		item, err = popWait(c.Request().Context(), p)
	} else {
		item, err = p.TryPop()
	}
	if err != nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.Blob(http.StatusOK, echo.MIMEOctetStream, item)
}

// Status reports the length, parked readers and block counters of the
// named pipe.
func (h *Handler) Status(c echo.Context) error {
	name := c.Param("name")
	p, ok := h.Registry.Lookup(name)
	if !ok {
		return c.String(http.StatusNotFound, "pipe not found")
	}
	st := p.Stats()
	return c.JSON(http.StatusOK, PipeStatus{
		Name:      name,
		Len:       p.Len(),
		Waiting:   p.Waiting(),
		BlockSize: p.BlockSize(),
		Allocated: st.Allocated,
		Reused:    st.Reused,
		Retired:   st.Retired,
		Spare:     st.Spare,
	})
}

// popWait polls p until an item arrives or ctx ends. Pop itself cannot be
// cancelled, so a parked Pop would outlive a disconnected client.
func popWait(ctx context.Context, p *pipe.PipeNN[[]byte]) ([]byte, error) {
	backoff := iox.Backoff{}
	for {
		item, err := p.TryPop()
		if err == nil {
			return item, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		backoff.Wait()
	}
}
