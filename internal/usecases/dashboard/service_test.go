package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/catalog/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func ms(date string) int64 {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return t.UnixMilli()
}

func ptr[T any](v T) *T {
	return &v
}

func productA() *domain.Product {
	return &domain.Product{
		ID:    "A",
		Title: "Produto A",
		Sales: []domain.SaleRecord{
			{WeekEnding: "2023-07-01", RetailSales: 75, WholesaleSales: 60, UnitsSold: 3, RetailerMargin: 15},
			{WeekEnding: "2023-01-01", RetailSales: 100, WholesaleSales: 80, UnitsSold: 4, RetailerMargin: 20},
			{WeekEnding: "2024-01-01", RetailSales: 50, WholesaleSales: 40, UnitsSold: 2, RetailerMargin: 10},
		},
	}
}

func productB() *domain.Product {
	return &domain.Product{
		ID:    "B",
		Title: "Produto B",
		Sales: []domain.SaleRecord{
			{WeekEnding: "2017-01-01", RetailSales: 10, WholesaleSales: 8},
			{WeekEnding: "2017-03-01", RetailSales: 20, WholesaleSales: 16},
		},
	}
}

func productWithoutDates() *domain.Product {
	return &domain.Product{
		ID:    "C",
		Title: "Produto C",
		Sales: []domain.SaleRecord{
			{WeekEnding: "01/08/2023", RetailSales: 10},
		},
	}
}

func testCatalog(version string, products ...*domain.Product) *domain.Catalog {
	return &domain.Catalog{Products: products, FetchedAt: time.Now(), Version: version}
}

// newLoadedService cria o serviço e carrega os catálogos na ordem informada
func newLoadedService(t *testing.T, catalogs ...*domain.Catalog) (*Service, *mocks.MockCatalogIntegrator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockCatalogIntegrator(ctrl)
	svc := newService(integrator)

	if len(catalogs) > 0 {
		integrator.EXPECT().FetchCatalog(gomock.Any()).Return(catalogs[0], nil)
		changed, err := svc.RefreshCatalog(context.Background())
		require.NoError(t, err)
		require.True(t, changed)
	}

	return svc, integrator
}

func requireDashboardCode(t *testing.T, err error, sentinel error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)

	var dashErr *DashboardError
	require.True(t, errors.As(err, &dashErr))
	assert.Equal(t, code, dashErr.Code)
}

func TestService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("catálogo ainda não carregado", func(t *testing.T) {
		svc, _ := newLoadedService(t)
		state, products, err := svc.ListProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.DisplayLoading, state)
		assert.Empty(t, products)
	})

	t.Run("catálogo vazio", func(t *testing.T) {
		svc, _ := newLoadedService(t, testCatalog("v1"))
		state, products, err := svc.ListProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.DisplayEmpty, state)
		assert.Empty(t, products)
	})

	t.Run("catálogo com produtos", func(t *testing.T) {
		svc, _ := newLoadedService(t, testCatalog("v1", productA(), productB()))
		state, products, err := svc.ListProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.DisplayReady, state)
		require.Len(t, products, 2)
		assert.Equal(t, "A", products[0].ID)
		assert.Equal(t, "Produto B", products[1].Title)
	})
}

func TestService_CreateSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoadedService(t, testCatalog("v1", productA(), productB()))

	t.Run("sem produto usa o primeiro do catálogo", func(t *testing.T) {
		state, err := svc.CreateSession(ctx, "")
		require.NoError(t, err)

		assert.NotEmpty(t, state.ID)
		assert.Equal(t, "A", state.ProductID)
		assert.Equal(t, domain.DisplayReady, state.DisplayState)
		assert.Equal(t, uint64(1), state.Generation)
		require.NotNil(t, state.Viewport)
		assert.Equal(t, ms("2023-01-01"), state.Viewport.MinTime)
		assert.Equal(t, ms("2024-01-01"), state.Viewport.MaxTime)
		assert.Equal(t, domain.GranularityMonth, state.TimeUnit)
		assert.Equal(t, domain.DefaultSortState(), state.Sort)
	})

	t.Run("produto informado", func(t *testing.T) {
		state, err := svc.CreateSession(ctx, "B")
		require.NoError(t, err)
		assert.Equal(t, "B", state.ProductID)
		assert.Equal(t, domain.GranularityDay, state.TimeUnit)
	})

	t.Run("produto inexistente", func(t *testing.T) {
		_, err := svc.CreateSession(ctx, "Z")
		requireDashboardCode(t, err, ErrProductNotFound, apiErrors.ErrProductNotFound)
	})
}

func TestService_SessionBeforeCatalog(t *testing.T) {
	ctx := context.Background()
	svc, integrator := newLoadedService(t)

	state, err := svc.CreateSession(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DisplayLoading, state.DisplayState)
	assert.Nil(t, state.Viewport)

	chart, err := svc.Chart(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DisplayLoading, chart.DisplayState)
	assert.Empty(t, chart.Datasets)

	_, err = svc.CreateSession(ctx, "A")
	requireDashboardCode(t, err, ErrCatalogNotLoaded, apiErrors.ErrCatalogNotLoaded)

	integrator.EXPECT().FetchCatalog(gomock.Any()).Return(testCatalog("v1", productA()), nil)
	changed, err := svc.RefreshCatalog(ctx)
	require.NoError(t, err)
	assert.True(t, changed)

	refreshed, err := svc.GetSession(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", refreshed.ProductID)
	assert.Equal(t, domain.DisplayReady, refreshed.DisplayState)
}

func TestService_EmptyCatalogSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoadedService(t, testCatalog("v1"))

	state, err := svc.CreateSession(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DisplayEmpty, state.DisplayState)

	table, err := svc.Table(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DisplayEmpty, table.DisplayState)
	assert.Empty(t, table.Rows)
}

func TestService_SelectProductSupersedesViewport(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoadedService(t, testCatalog("v1", productA(), productB()))

	state, err := svc.CreateSession(ctx, "A")
	require.NoError(t, err)

	// Zoom em A pela metade
	chart, err := svc.Zoom(ctx, state.ID, ZoomRequest{
		ProductID:   "A",
		FocalTime:   ms("2023-07-01"),
		ScaleFactor: ptr(0.5),
	})
	require.NoError(t, err)
	assert.Empty(t, chart.Warning)
	assert.Less(t, chart.AxisConfig.Viewport.Width(), ms("2024-01-01")-ms("2023-01-01"))

	_, err = svc.SortTable(ctx, state.ID, "retailSales", "")
	require.NoError(t, err)

	selected, err := svc.SelectProduct(ctx, state.ID, "B")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), selected.Generation)
	require.NotNil(t, selected.Viewport)
	assert.Equal(t, ms("2017-01-01"), selected.Viewport.MinTime)
	assert.Equal(t, ms("2017-03-01"), selected.Viewport.MaxTime)
	assert.Equal(t, domain.DefaultSortState(), selected.Sort)

	// Gesto iniciado em A chegando depois da troca
	_, err = svc.Pan(ctx, state.ID, PanRequest{ProductID: "A", DeltaMs: ptr(int64(domain.DayMs))})
	requireDashboardCode(t, err, ErrStaleInteraction, apiErrors.ErrStaleInteraction)

	after, err := svc.GetSession(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, selected.Viewport, after.Viewport)

	_, err = svc.ResetZoom(ctx, state.ID, "A")
	assert.ErrorIs(t, err, ErrStaleInteraction)
}

func TestService_GestureWithoutProductIsRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoadedService(t, testCatalog("v1", productA(), productB()))

	state, err := svc.CreateSession(ctx, "A")
	require.NoError(t, err)

	selected, err := svc.SelectProduct(ctx, state.ID, "B")
	require.NoError(t, err)
	require.NotNil(t, selected.Viewport)
	fullB := *selected.Viewport

	tests := []struct {
		name    string
		gesture func() error
	}{
		{
			name: "zoom sem produto",
			gesture: func() error {
				_, err := svc.Zoom(ctx, state.ID, ZoomRequest{FocalTime: ms("2023-06-01"), ScaleFactor: ptr(0.5)})
				return err
			},
		},
		{
			name: "pan sem produto",
			gesture: func() error {
				_, err := svc.Pan(ctx, state.ID, PanRequest{DeltaMs: ptr(int64(domain.DayMs))})
				return err
			},
		},
		{
			name: "reset sem produto",
			gesture: func() error {
				_, err := svc.ResetZoom(ctx, state.ID, "")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireDashboardCode(t, tt.gesture(), ErrStaleInteraction, apiErrors.ErrStaleInteraction)

			after, err := svc.GetSession(ctx, state.ID)
			require.NoError(t, err)
			require.NotNil(t, after.Viewport)
			assert.Equal(t, fullB, *after.Viewport)
			assert.Equal(t, "B", after.ProductID)
		})
	}
}

func TestService_GestureOnSessionWithoutProduct(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoadedService(t, testCatalog("v1"))

	state, err := svc.CreateSession(ctx, "")
	require.NoError(t, err)

	chart, err := svc.Zoom(ctx, state.ID, ZoomRequest{FocalTime: ms("2023-06-01"), ScaleFactor: ptr(0.5)})
	require.NoError(t, err)
	assert.Equal(t, domain.DisplayEmpty, chart.DisplayState)
	assert.NotEmpty(t, chart.Warning)
}

func TestService_SelectProductErrors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoadedService(t, testCatalog("v1", productA()))

	state, err := svc.CreateSession(ctx, "")
	require.NoError(t, err)

	_, err = svc.SelectProduct(ctx, state.ID, "Z")
	requireDashboardCode(t, err, ErrProductNotFound, apiErrors.ErrProductNotFound)

	_, err = svc.SelectProduct(ctx, "inexistente", "A")
	requireDashboardCode(t, err, ErrSessionNotFound, apiErrors.ErrSessionNotFound)

	_, err = svc.GetSession(ctx, "")
	assert.ErrorIs(t, err, ErrSessionIDRequired)
}

func TestService_Pan(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoadedService(t, testCatalog("v1", productA()))

	state, err := svc.CreateSession(ctx, "")
	require.NoError(t, err)

	t.Run("pan no intervalo completo não altera o viewport", func(t *testing.T) {
		chart, err := svc.Pan(ctx, state.ID, PanRequest{ProductID: "A", DeltaMs: ptr(int64(30 * domain.DayMs))})
		require.NoError(t, err)
		assert.Empty(t, chart.Warning)
		assert.Equal(t, ms("2023-01-01"), chart.AxisConfig.Viewport.MinTime)
		assert.Equal(t, ms("2024-01-01"), chart.AxisConfig.Viewport.MaxTime)
	})

	t.Run("arraste depois do zoom", func(t *testing.T) {
		zoomed, err := svc.Zoom(ctx, state.ID, ZoomRequest{ProductID: "A", FocalTime: ms("2023-07-01"), ScaleFactor: ptr(0.5)})
		require.NoError(t, err)
		before := *zoomed.AxisConfig.Viewport

		// Arrastar para a esquerda avança no tempo
		chart, err := svc.Pan(ctx, state.ID, PanRequest{ProductID: "A", DragPixels: ptr(-100.0), PlotWidthPx: 1000})
		require.NoError(t, err)
		after := *chart.AxisConfig.Viewport

		assert.Greater(t, after.MinTime, before.MinTime)
		assert.Equal(t, before.Width(), after.Width())
	})

	t.Run("requisição sem deslocamento", func(t *testing.T) {
		_, err := svc.Pan(ctx, state.ID, PanRequest{})
		requireDashboardCode(t, err, ErrInvalidGesture, apiErrors.ErrInvalidGesture)
	})

	t.Run("arraste sem largura do gráfico", func(t *testing.T) {
		_, err := svc.Pan(ctx, state.ID, PanRequest{DragPixels: ptr(10.0)})
		assert.ErrorIs(t, err, ErrInvalidGesture)
	})
}

func TestService_Zoom(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoadedService(t, testCatalog("v1", productA()))

	state, err := svc.CreateSession(ctx, "")
	require.NoError(t, err)
	fullWidth := ms("2024-01-01") - ms("2023-01-01")

	t.Run("fator inválido mantém o viewport e vira aviso", func(t *testing.T) {
		chart, err := svc.Zoom(ctx, state.ID, ZoomRequest{ProductID: "A", FocalTime: ms("2023-07-01"), ScaleFactor: ptr(0.0)})
		require.NoError(t, err)
		assert.NotEmpty(t, chart.Warning)
		assert.Equal(t, domain.DisplayReady, chart.DisplayState)
		assert.Equal(t, fullWidth, chart.AxisConfig.Viewport.Width())
	})

	t.Run("roda do mouse aproxima", func(t *testing.T) {
		chart, err := svc.Zoom(ctx, state.ID, ZoomRequest{ProductID: "A", FocalTime: ms("2023-07-01"), WheelDeltaY: ptr(-100.0)})
		require.NoError(t, err)
		assert.InDelta(t, float64(fullWidth)/1.01, float64(chart.AxisConfig.Viewport.Width()), 1)
	})

	t.Run("reset volta ao intervalo completo", func(t *testing.T) {
		chart, err := svc.ResetZoom(ctx, state.ID, "A")
		require.NoError(t, err)
		assert.Equal(t, fullWidth, chart.AxisConfig.Viewport.Width())
	})

	t.Run("requisição com dois gestos", func(t *testing.T) {
		_, err := svc.Zoom(ctx, state.ID, ZoomRequest{ScaleFactor: ptr(0.5), WheelDeltaY: ptr(1.0)})
		assert.ErrorIs(t, err, ErrInvalidGesture)
	})
}

func TestService_ProductWithoutPlottableData(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoadedService(t, testCatalog("v1", productWithoutDates()))

	state, err := svc.CreateSession(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DisplayNoData, state.DisplayState)

	chart, err := svc.Pan(ctx, state.ID, PanRequest{ProductID: "C", DeltaMs: ptr(int64(1000))})
	require.NoError(t, err)
	assert.Equal(t, domain.DisplayNoData, chart.DisplayState)
	assert.NotEmpty(t, chart.Warning)
	assert.Equal(t, 1, chart.DroppedRecords)

	// A tabela continua exibindo os registros
	table, err := svc.Table(ctx, state.ID)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestService_SortTable(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoadedService(t, testCatalog("v1", productA()))

	state, err := svc.CreateSession(ctx, "")
	require.NoError(t, err)

	table, err := svc.SortTable(ctx, state.ID, "retailSales", "")
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 75, 100}, retailValues(table.Rows))
	assert.Equal(t, domain.Ascending, table.Sort.Direction)

	table, err = svc.SortTable(ctx, state.ID, "retailSales", "")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 75, 50}, retailValues(table.Rows))
	assert.Equal(t, domain.Descending, table.Sort.Direction)

	_, err = svc.SortTable(ctx, state.ID, "price", "")
	requireDashboardCode(t, err, ErrInvalidSortColumn, apiErrors.ErrInvalidSortColumn)

	// A coluna inválida não altera o estado
	table, err = svc.Table(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Descending, table.Sort.Direction)
}

func TestService_SortTableWithDirection(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoadedService(t, testCatalog("v1", productA()))

	state, err := svc.CreateSession(ctx, "")
	require.NoError(t, err)

	tests := []struct {
		name      string
		column    string
		direction string
		wantOrder domain.SortDirection
		wantRows  []float64
	}{
		{name: "descendente explícito", column: "retailSales", direction: "desc", wantOrder: domain.Descending, wantRows: []float64{100, 75, 50}},
		{name: "repetir a direção não alterna", column: "retailSales", direction: "desc", wantOrder: domain.Descending, wantRows: []float64{100, 75, 50}},
		{name: "ascendente explícito", column: "retailSales", direction: "asc", wantOrder: domain.Ascending, wantRows: []float64{50, 75, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := svc.SortTable(ctx, state.ID, tt.column, tt.direction)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOrder, table.Sort.Direction)
			assert.Equal(t, tt.wantRows, retailValues(table.Rows))
		})
	}

	t.Run("direção inválida não altera o estado", func(t *testing.T) {
		_, err := svc.SortTable(ctx, state.ID, "retailSales", "sideways")
		requireDashboardCode(t, err, ErrInvalidSortDirection, apiErrors.ErrInvalidSortOrder)

		table, err := svc.Table(ctx, state.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.Ascending, table.Sort.Direction)
	})
}

func retailValues(rows []domain.SaleRecord) []float64 {
	values := make([]float64, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.RetailSales)
	}
	return values
}

func TestService_RefreshCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("mesma versão não altera as sessões", func(t *testing.T) {
		svc, integrator := newLoadedService(t, testCatalog("v1", productA()))
		state, err := svc.CreateSession(ctx, "")
		require.NoError(t, err)

		integrator.EXPECT().FetchCatalog(gomock.Any()).Return(testCatalog("v1", productA()), nil)
		changed, err := svc.RefreshCatalog(ctx)
		require.NoError(t, err)
		assert.False(t, changed)

		after, err := svc.GetSession(ctx, state.ID)
		require.NoError(t, err)
		assert.Equal(t, state.Generation, after.Generation)
	})

	t.Run("nova versão reaponta as sessões", func(t *testing.T) {
		svc, integrator := newLoadedService(t, testCatalog("v1", productA(), productB()))
		onA, err := svc.CreateSession(ctx, "A")
		require.NoError(t, err)
		onB, err := svc.CreateSession(ctx, "B")
		require.NoError(t, err)

		_, err = svc.Zoom(ctx, onA.ID, ZoomRequest{ProductID: "A", FocalTime: ms("2023-07-01"), ScaleFactor: ptr(0.5)})
		require.NoError(t, err)
		_, err = svc.SortTable(ctx, onA.ID, "unitsSold", "")
		require.NoError(t, err)

		updatedA := productA()
		updatedA.Sales = append(updatedA.Sales, domain.SaleRecord{WeekEnding: "2024-06-01", RetailSales: 1})

		integrator.EXPECT().FetchCatalog(gomock.Any()).Return(testCatalog("v2", updatedA), nil)
		changed, err := svc.RefreshCatalog(ctx)
		require.NoError(t, err)
		assert.True(t, changed)

		afterA, err := svc.GetSession(ctx, onA.ID)
		require.NoError(t, err)
		assert.Equal(t, "A", afterA.ProductID)
		assert.Equal(t, ms("2024-06-01"), afterA.Viewport.MaxTime)
		assert.Equal(t, domain.ColumnUnitsSold, afterA.Sort.Column)
		assert.Greater(t, afterA.Generation, onA.Generation)

		// O produto B sumiu do catálogo
		afterB, err := svc.GetSession(ctx, onB.ID)
		require.NoError(t, err)
		assert.Equal(t, "A", afterB.ProductID)
		assert.Equal(t, domain.DefaultSortState(), afterB.Sort)
	})

	t.Run("falha no integrador", func(t *testing.T) {
		svc, integrator := newLoadedService(t, testCatalog("v1", productA()))

		integrator.EXPECT().FetchCatalog(gomock.Any()).Return(nil, errors.New("timeout"))
		changed, err := svc.RefreshCatalog(ctx)
		assert.False(t, changed)
		requireDashboardCode(t, err, ErrCatalogUnavailable, apiErrors.ErrExternalService)

		// O catálogo anterior continua valendo
		state, _, err := svc.ListProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.DisplayReady, state)
	})
}

func TestService_CleanupIdleSessions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoadedService(t, testCatalog("v1", productA()))

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	idle, err := svc.CreateSession(ctx, "")
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	active, err := svc.CreateSession(ctx, "")
	require.NoError(t, err)

	now = now.Add(15 * time.Minute)
	assert.Equal(t, 0, svc.CleanupIdleSessions(0))
	assert.Equal(t, 1, svc.CleanupIdleSessions(30*time.Minute))

	_, err = svc.GetSession(ctx, idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.GetSession(ctx, active.ID)
	assert.NoError(t, err)
}
