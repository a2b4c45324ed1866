package catalogclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrUnexpectedStatus indica uma resposta não-200 do servidor do catálogo
var ErrUnexpectedStatus = errors.New("catálogo respondeu com status inesperado")

// GetCatalog busca o data.json com a lista completa de produtos
func (c *CatalogClient) GetCatalog(ctx context.Context) (CatalogResponse, error) {
	var response CatalogResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição do catálogo")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao executar a requisição para %s", c.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Wrap(ErrUnexpectedStatus, fmt.Sprintf("%s: %s", resp.Status, body))
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o catálogo")
	}

	return response, nil
}
