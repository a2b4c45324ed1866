package dashboard

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/tabling"
)

// session guarda o estado de interação de um cliente. Toda operação roda
// inteira com mu travado, então gestos da mesma sessão nunca se intercalam.
type session struct {
	mu sync.Mutex

	id         string
	product    *domain.Product
	series     *charting.ProductSeries
	controller *charting.ViewportController
	table      *tabling.Engine
	generation uint64
	createdAt  time.Time

	// lastSeen é lido pela limpeza sem travar mu
	lastSeen atomic.Int64
}

func newSession(id string, now time.Time) *session {
	sess := &session{
		id:         id,
		controller: charting.NewViewportController(),
		table:      tabling.NewEngine(),
		createdAt:  now,
	}
	sess.touch(now)
	return sess
}

func (s *session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *session) lastSeenAt() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

// selectProduct troca o produto exibido. Qualquer viewport anterior é descartado
// e o novo produto começa no intervalo completo.
func (s *session) selectProduct(product *domain.Product, resetSort bool) {
	s.generation++
	s.product = product

	if resetSort {
		s.table.Reset()
	}

	if product == nil {
		s.series = nil
		s.controller.Reset(nil)
		return
	}

	s.series = charting.NewProductSeries(product)
	s.controller.Reset(s.series.Extent())
}

func (s *session) productID() string {
	if s.product == nil {
		return ""
	}
	return s.product.ID
}

func (s *session) displayState(catalogLoaded bool) domain.DisplayState {
	if s.product == nil {
		if !catalogLoaded {
			return domain.DisplayLoading
		}
		return domain.DisplayEmpty
	}
	if _, ok := s.controller.Viewport(); !ok {
		return domain.DisplayNoData
	}
	return domain.DisplayReady
}

func (s *session) state(catalogLoaded bool) *domain.SessionState {
	state := &domain.SessionState{
		ID:           s.id,
		ProductID:    s.productID(),
		DisplayState: s.displayState(catalogLoaded),
		Generation:   s.generation,
		Sort:         s.table.State(),
		CreatedAt:    s.createdAt,
		LastSeenAt:   s.lastSeenAt(),
	}

	if s.product != nil {
		summary := s.product.Summary()
		state.Product = &summary
	}

	if viewport, ok := s.controller.Viewport(); ok {
		state.Viewport = &viewport
		state.TimeUnit = charting.GranularityFor(viewport.Width())
	}

	return state
}

func (s *session) chart(catalogLoaded bool) domain.ChartPayload {
	if s.product == nil {
		return charting.EmptyChartPayload(s.displayState(catalogLoaded), "")
	}
	return charting.BuildChartPayload(s.series, s.controller)
}

func (s *session) tablePayload(catalogLoaded bool) domain.TablePayload {
	var sales []domain.SaleRecord
	if s.product != nil {
		sales = s.product.Sales
	}

	payload := s.table.Payload(s.productID(), sales)
	if s.product == nil {
		payload.DisplayState = s.displayState(catalogLoaded)
	}
	return payload
}
