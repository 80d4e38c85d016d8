package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Suvam-Debnath/EcomTCS/internal/registry"
)

// LookupState 外部查詢的結果標記
// 找不到跟連不上是不同的失敗，呼叫端自行決定怎麼收斂
type LookupState uint

const (
	LookupFound LookupState = iota
	LookupNotFound
	LookupUnavailable
)

const defaultTimeout = 3 * time.Second

type baseClient struct {
	service    string
	resolver   registry.Resolver
	httpClient *http.Client
}

func newBaseClient(service string, resolver registry.Resolver) baseClient {
	return baseClient{
		service:  service,
		resolver: resolver,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// getJSON 解析服務位址後GET，將回應的data解到out
func (c *baseClient) getJSON(ctx context.Context, path string, out any) LookupState {
	inst, err := c.resolver.Resolve(ctx, c.service)
	if err != nil {
		return LookupUnavailable
	}

	url := fmt.Sprintf("http://%s%s", inst.Addr, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return LookupUnavailable
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return LookupUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return LookupNotFound
	case resp.StatusCode != http.StatusOK:
		return LookupUnavailable
	}

	// handler統一包{"data": ...}
	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return LookupUnavailable
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return LookupUnavailable
	}
	return LookupFound
}
