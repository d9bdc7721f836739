// Package page serves the rendered résumé page and its document.
package page

import (
	"context"

	"resume-page/resume/model"
	"resume-page/resume/render"
)

// Service runs one page view per call. It holds no per-request state.
type Service struct {
	Loader   render.DocumentLoader
	Renderer *render.Renderer
}

// NewService constructs a Service.
func NewService(loader render.DocumentLoader, renderer *render.Renderer) *Service {
	return &Service{Loader: loader, Renderer: renderer}
}

// Render runs a fresh page view. A document that cannot be loaded is not an
// error here: the returned view is in the error state with the error view
// attached.
func (s *Service) Render(ctx context.Context) (*render.PageView, error) {
	view := s.Renderer.NewPageView()
	if err := view.Run(ctx, s.Loader); err != nil {
		return view, err
	}
	return view, nil
}

// Document loads the résumé document without rendering it.
func (s *Service) Document(ctx context.Context) (*model.Document, error) {
	return s.Loader.Load(ctx)
}
