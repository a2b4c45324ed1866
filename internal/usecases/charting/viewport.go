package charting

import (
	"math"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// ViewportController é o dono do intervalo visível do gráfico.
// Após qualquer pan/zoom: extent.Min <= MinTime < MaxTime <= extent.Max.
type ViewportController struct {
	extent   *domain.Extent
	viewport *domain.Viewport
}

func NewViewportController() *ViewportController {
	return &ViewportController{}
}

// Reset posiciona o viewport no intervalo completo. Chamado a cada troca de produto;
// um extent nulo deixa o viewport indefinido (estado "sem dados").
func (c *ViewportController) Reset(extent *domain.Extent) {
	if extent == nil || extent.Max <= extent.Min {
		c.extent = nil
		c.viewport = nil
		return
	}

	e := *extent
	c.extent = &e
	c.viewport = &domain.Viewport{MinTime: e.Min, MaxTime: e.Max}
}

// ResetZoom volta ao intervalo completo sem trocar de série
func (c *ViewportController) ResetZoom() (domain.Viewport, error) {
	if c.extent == nil {
		return domain.Viewport{}, &domain.EmptySeriesError{}
	}
	c.Reset(c.extent)
	return *c.viewport, nil
}

func (c *ViewportController) Viewport() (domain.Viewport, bool) {
	if c.viewport == nil {
		return domain.Viewport{}, false
	}
	return *c.viewport, true
}

func (c *ViewportController) Extent() (domain.Extent, bool) {
	if c.extent == nil {
		return domain.Extent{}, false
	}
	return *c.extent, true
}

// Pan desloca o viewport no eixo do tempo. Na borda do intervalo o deslocamento
// naquela direção não tem efeito.
func (c *ViewportController) Pan(deltaMs int64) (domain.Viewport, error) {
	if c.viewport == nil {
		return domain.Viewport{}, &domain.EmptySeriesError{}
	}

	current := *c.viewport
	extentWidth := c.extent.Width()

	// Evita overflow em deslocamentos absurdos
	if deltaMs > extentWidth {
		deltaMs = extentWidth
	} else if deltaMs < -extentWidth {
		deltaMs = -extentWidth
	}

	next := c.fit(current.MinTime+deltaMs, current.Width())
	return c.apply("pan", current, next)
}

// Zoom redimensiona o viewport em torno do ponto focal. scaleFactor < 1 aproxima.
// A fração do viewport de cada lado do ponto focal é preservada.
func (c *ViewportController) Zoom(focalTimeMs int64, scaleFactor float64) (domain.Viewport, error) {
	if c.viewport == nil {
		return domain.Viewport{}, &domain.EmptySeriesError{}
	}

	current := *c.viewport

	if math.IsNaN(scaleFactor) || math.IsInf(scaleFactor, 0) || scaleFactor <= 0 {
		return current, &domain.InvalidViewportError{Op: "zoom", Reason: "fator de escala deve ser positivo e finito"}
	}

	if scaleFactor == 1 {
		return current, nil
	}

	focal := focalTimeMs
	if focal < current.MinTime {
		focal = current.MinTime
	} else if focal > current.MaxTime {
		focal = current.MaxTime
	}

	width := float64(current.Width())
	fraction := float64(focal-current.MinTime) / width

	minWidth, maxWidth := c.widthBounds()
	newWidth := maxWidth
	if scaled := width * scaleFactor; scaled < float64(maxWidth) {
		newWidth = int64(math.Round(scaled))
	}
	if newWidth < minWidth {
		newWidth = minWidth
	}

	newMin := focal - int64(math.Round(fraction*float64(newWidth)))
	next := c.fit(newMin, newWidth)
	return c.apply("zoom", current, next)
}

// DragDeltaMs converte um arraste em pixels no deslocamento equivalente em ms.
// Arrastar para a direita mostra períodos anteriores.
func (c *ViewportController) DragDeltaMs(dxPixels, plotWidthPx float64) int64 {
	if c.viewport == nil || plotWidthPx <= 0 || math.IsNaN(dxPixels) || math.IsInf(dxPixels, 0) {
		return 0
	}
	return int64(math.Round(-dxPixels / plotWidthPx * float64(c.viewport.Width())))
}

// WheelScaleFactor converte o giro da roda do mouse em fator de escala.
// deltaY negativo aproxima na velocidade informada.
func WheelScaleFactor(deltaY, speed float64) float64 {
	if deltaY == 0 || math.IsNaN(deltaY) || speed <= 0 || speed >= 1 {
		return 1
	}
	if deltaY < 0 {
		return 1 / (1 + speed)
	}
	return 1 / (1 - speed)
}

func (c *ViewportController) widthBounds() (int64, int64) {
	maxWidth := c.extent.Width()
	minWidth := domain.DayMs
	if minWidth > maxWidth {
		minWidth = maxWidth
	}
	return minWidth, maxWidth
}

// fit encaixa um viewport de largura width começando em minTime dentro do extent
func (c *ViewportController) fit(minTime, width int64) domain.Viewport {
	e := *c.extent
	if width >= e.Width() {
		return domain.Viewport{MinTime: e.Min, MaxTime: e.Max}
	}

	if minTime < e.Min {
		minTime = e.Min
	}
	if minTime+width > e.Max {
		minTime = e.Max - width
	}

	return domain.Viewport{MinTime: minTime, MaxTime: minTime + width}
}

func (c *ViewportController) apply(op string, current, next domain.Viewport) (domain.Viewport, error) {
	if next.MinTime >= next.MaxTime {
		return current, &domain.InvalidViewportError{Op: op, Reason: "minTime deve ser menor que maxTime"}
	}
	if next.MinTime < c.extent.Min || next.MaxTime > c.extent.Max {
		return current, &domain.InvalidViewportError{Op: op, Reason: "viewport fora do intervalo da série"}
	}

	c.viewport = &next
	return next, nil
}
