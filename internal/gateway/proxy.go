package gateway

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/Suvam-Debnath/EcomTCS/internal/gateway/breaker"
	"github.com/Suvam-Debnath/EcomTCS/internal/registry"
	"github.com/rs/zerolog"
)

// ServiceProxy 單一下游服務的反向代理，帶斷路器
// 每次請求都透過registry解析實例位址
type ServiceProxy struct {
	service  string
	resolver registry.Resolver
	breaker  *breaker.Breaker
	fallback http.HandlerFunc
	logger   *zerolog.Logger
}

func NewServiceProxy(service string, resolver registry.Resolver, b *breaker.Breaker, fallback http.HandlerFunc, logger *zerolog.Logger) *ServiceProxy {
	if b == nil {
		b = breaker.NewBreaker(nil)
	}
	return &ServiceProxy{
		service:  service,
		resolver: resolver,
		breaker:  b,
		fallback: fallback,
		logger:   logger,
	}
}

func (p *ServiceProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !p.breaker.Allow() {
		p.logger.Warn().Str("service", p.service).Msg("circuit breaker open, serving fallback")
		p.fallback(w, r)
		return
	}

	inst, err := p.resolver.Resolve(r.Context(), p.service)
	if err != nil {
		p.breaker.Failure()
		p.logger.Error().Err(err).Str("service", p.service).Msg("failed to resolve service instance")
		p.fallback(w, r)
		return
	}

	target := &url.URL{Scheme: "http", Host: inst.Addr}
	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ModifyResponse: func(resp *http.Response) error {
			if resp.StatusCode >= http.StatusInternalServerError {
				p.breaker.Failure()
			} else {
				p.breaker.Success()
			}
			return nil
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			p.breaker.Failure()
			p.logger.Error().Err(err).Str("service", p.service).Str("addr", inst.Addr).Msg("proxy request failed")
			p.fallback(w, r)
		},
	}

	proxy.ServeHTTP(w, r)
}
