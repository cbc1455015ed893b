// Copyright 2026 The Routed Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package routed

import (
	"fmt"
	"net"
	"strings"
)

// proxyChainWarnThreshold is the hop count above which resolveClientIP
// emits a "long_proxy_chain" diagnostic; an unusually long chain is more
// likely spoofed than legitimate.
const proxyChainWarnThreshold = 10

// trustedProxyConfig is the compiled form of EngineConfig's trustedProxies
// list: exact IPs and CIDR blocks, both IPv4 and IPv6 (§4.7).
type trustedProxyConfig struct {
	cidrs []*net.IPNet
	exact map[string]bool
}

func compileTrustedProxies(entries []string) (*trustedProxyConfig, error) {
	cfg := &trustedProxyConfig{exact: make(map[string]bool)}
	for _, entry := range entries {
		if strings.Contains(entry, "/") {
			_, ipnet, err := net.ParseCIDR(entry)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTrustedProxy, entry, err)
			}
			cfg.cidrs = append(cfg.cidrs, ipnet)
			continue
		}
		ip := net.ParseIP(entry)
		if ip == nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTrustedProxy, entry)
		}
		cfg.exact[ip.String()] = true
	}
	return cfg, nil
}

// isTrusted reports whether a remote address (no port) is an exact match
// or falls within a trusted CIDR block.
func (cfg *trustedProxyConfig) isTrusted(remoteIP string) bool {
	if cfg == nil {
		return false
	}
	parsed := net.ParseIP(remoteIP)
	if parsed == nil {
		return false
	}
	if cfg.exact[parsed.String()] {
		return true
	}
	for _, ipnet := range cfg.cidrs {
		if ipnet.Contains(parsed) {
			return true
		}
	}
	return false
}

// resolveClientIP implements the §4.7 priority order:
//
//  1. trusted platform header, if enabled and the peer is a trusted proxy.
//  2. first comma-delimited value of the first present remoteIPHeaders
//     entry, if proxy support is enabled and the peer is trusted.
//  3. the direct remote address.
func (e *Engine) resolveClientIP(req *Request) string {
	remote := req.RemoteIP()

	if !e.config.forwardedByClientIP || e.trustedProxies == nil {
		return remote
	}

	peerTrusted := e.trustedProxies.isTrusted(remote)

	if e.config.enableTrustedPlatform && e.config.trustedPlatform != "" && peerTrusted {
		if v := req.Header(e.config.trustedPlatform); v != "" {
			return firstCommaValue(v)
		}
	}

	if e.config.enableProxySupport && peerTrusted {
		for _, header := range e.config.remoteIPHeaders {
			v := strings.TrimSpace(req.Header(header))
			if v == "" {
				continue
			}
			if hops := strings.Count(v, ",") + 1; hops > proxyChainWarnThreshold {
				e.emitDiagnostic(DiagnosticEvent{
					Kind:    "long_proxy_chain",
					Message: "header carries an unusually long forwarding chain",
					Route:   header,
				})
			}
			return firstCommaValue(v)
		}
	}

	return remote
}

func firstCommaValue(v string) string {
	if idx := strings.IndexByte(v, ','); idx >= 0 {
		v = v[:idx]
	}
	return strings.TrimSpace(v)
}
