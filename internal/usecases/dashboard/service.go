package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/catalog"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/tabling"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_dashboarder.go -package=mocks

const maxIDAttempts = 5

type Dashboarder interface {
	ListProducts(ctx context.Context) (domain.DisplayState, []domain.ProductSummary, error)
	CreateSession(ctx context.Context, productID string) (*domain.SessionState, error)
	GetSession(ctx context.Context, sessionID string) (*domain.SessionState, error)
	SelectProduct(ctx context.Context, sessionID, productID string) (*domain.SessionState, error)
	Pan(ctx context.Context, sessionID string, request PanRequest) (*domain.ChartPayload, error)
	Zoom(ctx context.Context, sessionID string, request ZoomRequest) (*domain.ChartPayload, error)
	ResetZoom(ctx context.Context, sessionID string, productID string) (*domain.ChartPayload, error)
	Chart(ctx context.Context, sessionID string) (*domain.ChartPayload, error)
	Table(ctx context.Context, sessionID string) (*domain.TablePayload, error)
	SortTable(ctx context.Context, sessionID, column, direction string) (*domain.TablePayload, error)
	RefreshCatalog(ctx context.Context) (bool, error)
	CleanupIdleSessions(maxIdle time.Duration) int
}

// PanRequest aceita um deslocamento em ms ou um arraste em pixels
type PanRequest struct {
	ProductID   string   `json:"productId"`
	DeltaMs     *int64   `json:"deltaMs,omitempty"`
	DragPixels  *float64 `json:"dragPixels,omitempty"`
	PlotWidthPx float64  `json:"plotWidthPx,omitempty"`
}

// ZoomRequest aceita um fator de escala ou o giro da roda do mouse
type ZoomRequest struct {
	ProductID   string   `json:"productId"`
	FocalTime   int64    `json:"focalTime"`
	ScaleFactor *float64 `json:"scaleFactor,omitempty"`
	WheelDeltaY *float64 `json:"wheelDeltaY,omitempty"`
}

type Service struct {
	integrator catalog.CatalogIntegrator

	mu       sync.RWMutex
	catalog  *domain.Catalog
	sessions map[string]*session

	now   func() time.Time
	newID func() (string, error)
}

func NewService(integrator catalog.CatalogIntegrator) Dashboarder {
	return newService(integrator)
}

func newService(integrator catalog.CatalogIntegrator) *Service {
	return &Service{
		integrator: integrator,
		sessions:   make(map[string]*session),
		now:        time.Now,
		newID:      utils.GenerateID,
	}
}

func (s *Service) currentCatalog() *domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

func (s *Service) ListProducts(ctx context.Context) (domain.DisplayState, []domain.ProductSummary, error) {
	current := s.currentCatalog()
	if current == nil {
		return domain.DisplayLoading, []domain.ProductSummary{}, nil
	}

	summaries := make([]domain.ProductSummary, 0, len(current.Products))
	for _, p := range current.Products {
		summaries = append(summaries, p.Summary())
	}

	if len(summaries) == 0 {
		return domain.DisplayEmpty, summaries, nil
	}
	return domain.DisplayReady, summaries, nil
}

// CreateSession abre uma sessão exibindo productID, ou o primeiro produto do catálogo
// quando productID é vazio. Sem catálogo carregado a sessão fica em "loading".
func (s *Service) CreateSession(ctx context.Context, productID string) (*domain.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var product *domain.Product
	if productID != "" {
		if s.catalog == nil {
			return nil, NewDashboardError(ErrCatalogNotLoaded, apiErrors.ErrCatalogNotLoaded, "Catálogo ainda não carregado")
		}
		product = s.catalog.FindProduct(productID)
		if product == nil {
			return nil, NewDashboardError(ErrProductNotFound, apiErrors.ErrProductNotFound, productID)
		}
	} else {
		product = s.catalog.FirstProduct()
	}

	id, err := s.uniqueIDLocked()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: erro ao gerar id da sessão")
		return nil, NewDashboardError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	// A sessão entra no mapa já apontando para o produto
	sess := newSession(id, s.now())
	sess.selectProduct(product, true)
	s.sessions[id] = sess

	log.ForContext(ctx).WithFields(log.Fields{
		"session_id": id,
		"product_id": sess.productID(),
	}).Info("dashboard: sessão criada")

	return sess.state(s.catalog != nil), nil
}

func (s *Service) uniqueIDLocked() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id, err := s.newID()
		if err != nil {
			return "", err
		}
		if _, exists := s.sessions[id]; !exists {
			return id, nil
		}
	}
	return "", errors.New("colisão de id de sessão")
}

// withSession localiza a sessão, trava e executa fn. O catálogo é lido depois da trava
// para que uma troca concorrente de catálogo já tenha sido aplicada à sessão.
func (s *Service) withSession(sessionID string, fn func(sess *session, current *domain.Catalog) error) error {
	if sessionID == "" {
		return NewDashboardError(ErrSessionIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return NewDashboardErrorWithSession(ErrSessionNotFound, apiErrors.ErrSessionNotFound, sessionID, "")
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.touch(s.now())
	return fn(sess, s.currentCatalog())
}

func (s *Service) GetSession(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	var state *domain.SessionState
	err := s.withSession(sessionID, func(sess *session, current *domain.Catalog) error {
		state = sess.state(current != nil)
		return nil
	})
	return state, err
}

// SelectProduct troca o produto da sessão. O gesto em andamento do produto
// anterior é abandonado e o novo produto aparece no intervalo completo.
func (s *Service) SelectProduct(ctx context.Context, sessionID, productID string) (*domain.SessionState, error) {
	if productID == "" {
		return nil, NewDashboardErrorWithSession(ErrProductNotFound, apiErrors.ErrMissingRequiredData, sessionID, "productId é obrigatório")
	}

	var state *domain.SessionState
	err := s.withSession(sessionID, func(sess *session, current *domain.Catalog) error {
		if current == nil {
			return NewDashboardErrorWithSession(ErrCatalogNotLoaded, apiErrors.ErrCatalogNotLoaded, sessionID, "")
		}

		product := current.FindProduct(productID)
		if product == nil {
			return NewDashboardErrorWithSession(ErrProductNotFound, apiErrors.ErrProductNotFound, sessionID, productID)
		}

		sess.selectProduct(product, true)

		log.ForContext(ctx).WithFields(log.Fields{
			"session_id":         sessionID,
			"session_generation": sess.generation,
			"product_id":         productID,
		}).Debug("dashboard: produto selecionado")

		state = sess.state(true)
		return nil
	})
	return state, err
}

// checkStale exige que o gesto informe o produto selecionado. Gestos sem
// produto ou calculados sobre outro produto são descartados sem alterar nada.
// Sessão sem produto não tem viewport para proteger.
func checkStale(sess *session, productID string) error {
	if sess.product == nil {
		return nil
	}
	if productID == "" {
		return NewDashboardErrorWithSession(ErrStaleInteraction, apiErrors.ErrStaleInteraction, sess.id,
			"productId é obrigatório; produto selecionado: "+sess.productID())
	}
	if productID != sess.productID() {
		return NewDashboardErrorWithSession(ErrStaleInteraction, apiErrors.ErrStaleInteraction, sess.id,
			"produto selecionado: "+sess.productID())
	}
	return nil
}

// interactionPayload devolve o gráfico após um gesto. Erros de viewport não são
// falhas: o viewport anterior é mantido e o erro vira aviso no payload.
func (s *Service) interactionPayload(ctx context.Context, sess *session, catalogLoaded bool, op string, err error) *domain.ChartPayload {
	payload := sess.chart(catalogLoaded)

	if err != nil {
		var invalid *domain.InvalidViewportError
		var empty *domain.EmptySeriesError
		switch {
		case errors.As(err, &invalid):
			payload.Warning = invalid.Error()
		case errors.As(err, &empty):
			if payload.Warning == "" {
				payload.Warning = empty.Error()
			}
		default:
			payload.Warning = err.Error()
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"session_id": sess.id,
			"product_id": sess.productID(),
			"error":      err.Error(),
		}).Debugf("dashboard: %s ignorado", op)
	}

	return &payload
}

func (s *Service) Pan(ctx context.Context, sessionID string, request PanRequest) (*domain.ChartPayload, error) {
	if (request.DeltaMs == nil) == (request.DragPixels == nil) {
		return nil, NewDashboardErrorWithSession(ErrInvalidGesture, apiErrors.ErrInvalidGesture, sessionID,
			"informe deltaMs ou dragPixels")
	}
	if request.DragPixels != nil && request.PlotWidthPx <= 0 {
		return nil, NewDashboardErrorWithSession(ErrInvalidGesture, apiErrors.ErrInvalidGesture, sessionID,
			"plotWidthPx deve ser positivo")
	}

	var payload *domain.ChartPayload
	err := s.withSession(sessionID, func(sess *session, current *domain.Catalog) error {
		if err := checkStale(sess, request.ProductID); err != nil {
			return err
		}

		deltaMs := int64(0)
		if request.DeltaMs != nil {
			deltaMs = *request.DeltaMs
		} else {
			deltaMs = sess.controller.DragDeltaMs(*request.DragPixels, request.PlotWidthPx)
		}

		_, panErr := sess.controller.Pan(deltaMs)
		payload = s.interactionPayload(ctx, sess, current != nil, "pan", panErr)
		return nil
	})
	return payload, err
}

func (s *Service) Zoom(ctx context.Context, sessionID string, request ZoomRequest) (*domain.ChartPayload, error) {
	if (request.ScaleFactor == nil) == (request.WheelDeltaY == nil) {
		return nil, NewDashboardErrorWithSession(ErrInvalidGesture, apiErrors.ErrInvalidGesture, sessionID,
			"informe scaleFactor ou wheelDeltaY")
	}

	var payload *domain.ChartPayload
	err := s.withSession(sessionID, func(sess *session, current *domain.Catalog) error {
		if err := checkStale(sess, request.ProductID); err != nil {
			return err
		}

		scale := 1.0
		if request.ScaleFactor != nil {
			scale = *request.ScaleFactor
		} else {
			scale = charting.WheelScaleFactor(*request.WheelDeltaY, charting.WheelSpeed())
		}

		_, zoomErr := sess.controller.Zoom(request.FocalTime, scale)
		payload = s.interactionPayload(ctx, sess, current != nil, "zoom", zoomErr)
		return nil
	})
	return payload, err
}

func (s *Service) ResetZoom(ctx context.Context, sessionID string, productID string) (*domain.ChartPayload, error) {
	var payload *domain.ChartPayload
	err := s.withSession(sessionID, func(sess *session, current *domain.Catalog) error {
		if err := checkStale(sess, productID); err != nil {
			return err
		}

		_, resetErr := sess.controller.ResetZoom()
		payload = s.interactionPayload(ctx, sess, current != nil, "reset", resetErr)
		return nil
	})
	return payload, err
}

func (s *Service) Chart(ctx context.Context, sessionID string) (*domain.ChartPayload, error) {
	var payload domain.ChartPayload
	err := s.withSession(sessionID, func(sess *session, current *domain.Catalog) error {
		payload = sess.chart(current != nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

func (s *Service) Table(ctx context.Context, sessionID string) (*domain.TablePayload, error) {
	var payload domain.TablePayload
	err := s.withSession(sessionID, func(sess *session, current *domain.Catalog) error {
		payload = sess.tablePayload(current != nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

// SortTable aplica um clique no cabeçalho da coluna. Com direction informada a
// ordenação é fixada nela em vez de alternar.
func (s *Service) SortTable(ctx context.Context, sessionID, column, direction string) (*domain.TablePayload, error) {
	parsed, err := tabling.ParseColumn(column)
	if err != nil {
		return nil, NewDashboardErrorWithSession(ErrInvalidSortColumn, apiErrors.ErrInvalidSortColumn, sessionID, column)
	}

	var order domain.SortDirection
	if direction != "" {
		order, err = tabling.ParseDirection(direction)
		if err != nil {
			return nil, NewDashboardErrorWithSession(ErrInvalidSortDirection, apiErrors.ErrInvalidSortOrder, sessionID, direction)
		}
	}

	var payload domain.TablePayload
	err = s.withSession(sessionID, func(sess *session, current *domain.Catalog) error {
		if order != "" {
			sess.table.SetSort(parsed, order)
		} else {
			sess.table.OnHeaderClick(parsed)
		}
		payload = sess.tablePayload(current != nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

// RefreshCatalog busca o catálogo e, se a versão mudou, reaponta todas as sessões
// para os dados novos. Sessões cujo produto sumiu voltam para o primeiro produto.
func (s *Service) RefreshCatalog(ctx context.Context) (bool, error) {
	logger := log.ForContext(ctx)

	fetched, err := s.integrator.FetchCatalog(ctx)
	if err != nil {
		logger.WithError(err).Error("dashboard: erro ao atualizar catálogo")
		return false, NewDashboardError(ErrCatalogUnavailable, apiErrors.ErrExternalService, err.Error())
	}

	s.mu.Lock()
	if s.catalog != nil && s.catalog.Version == fetched.Version {
		s.mu.Unlock()
		logger.WithField("product_version", fetched.Version).Debug("dashboard: catálogo sem alterações")
		return false, nil
	}
	s.catalog = fetched
	sessions := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.mu.Lock()
		previousID := sess.productID()
		product := fetched.FindProduct(previousID)
		if product == nil {
			product = fetched.FirstProduct()
		}
		sess.selectProduct(product, product == nil || product.ID != previousID)
		sess.mu.Unlock()
	}

	logger.WithFields(log.Fields{
		"product_version": fetched.Version,
		"product_count":   len(fetched.Products),
		"session_count":   len(sessions),
	}).Info("dashboard: catálogo atualizado")

	return true, nil
}

// CleanupIdleSessions remove as sessões sem atividade há mais de maxIdle
func (s *Service) CleanupIdleSessions(maxIdle time.Duration) int {
	if maxIdle <= 0 {
		return 0
	}

	cutoff := s.now().Add(-maxIdle).UnixNano()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Load() < cutoff {
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		log.L.WithFields(log.Fields{
			"session_removed":   removed,
			"session_remaining": len(s.sessions),
		}).Info("dashboard: sessões ociosas removidas")
	}

	return removed
}
